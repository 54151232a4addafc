package chaincode

import (
	"encoding/json"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
)

// fakeStub backs the transaction context with an in-memory world state.
// Only the methods the contract touches are implemented; calling anything
// else panics through the embedded nil interface, which is what we want in
// a test.
type fakeStub struct {
	shim.ChaincodeStubInterface
	state map[string][]byte
}

func newFakeStub() *fakeStub {
	return &fakeStub{state: make(map[string][]byte)}
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
	return s.state[key], nil
}

func (s *fakeStub) PutState(key string, value []byte) error {
	s.state[key] = value
	return nil
}

func (s *fakeStub) DelState(key string) error {
	delete(s.state, key)
	return nil
}

func (s *fakeStub) GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error) {
	kvs := make([]*queryresult.KV, 0, len(s.state))
	for key, value := range s.state {
		kvs = append(kvs, &queryresult.KV{Key: key, Value: value})
	}
	return &fakeIterator{kvs: kvs}, nil
}

// GetQueryResult evaluates an equality selector against the decoded JSON of
// every stored value, mimicking the CouchDB rich query the contract issues.
func (s *fakeStub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	var q struct {
		Selector map[string]string `json:"selector"`
	}
	if err := json.Unmarshal([]byte(query), &q); err != nil {
		return nil, err
	}

	kvs := make([]*queryresult.KV, 0)
	for key, value := range s.state {
		if len(value) == 0 {
			// A real index never serves tombstones, but the contract must
			// tolerate them; feed them through to prove that it does.
			kvs = append(kvs, &queryresult.KV{Key: key, Value: value})
			continue
		}

		var fields map[string]string
		if err := json.Unmarshal(value, &fields); err != nil {
			continue
		}

		matches := true
		for attr, want := range q.Selector {
			if fields[attr] != want {
				matches = false
				break
			}
		}
		if matches {
			kvs = append(kvs, &queryresult.KV{Key: key, Value: value})
		}
	}
	return &fakeIterator{kvs: kvs}, nil
}

type fakeIterator struct {
	kvs []*queryresult.KV
	pos int
}

func (it *fakeIterator) HasNext() bool {
	return it.pos < len(it.kvs)
}

func (it *fakeIterator) Next() (*queryresult.KV, error) {
	kv := it.kvs[it.pos]
	it.pos++
	return kv, nil
}

func (it *fakeIterator) Close() error {
	return nil
}

func newTestContext(stub *fakeStub) *contractapi.TransactionContext {
	ctx := &contractapi.TransactionContext{}
	ctx.SetStub(stub)
	return ctx
}
