package chaincode

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bureauchain/diplomachain/internal/app/models"
)

// richQuery is the CouchDB query document submitted to the state database.
// Selector keys are the JSON field names of models.Diploma.
type richQuery struct {
	Selector map[string]string `json:"selector"`
}

// QueryDiplomasByPrimKey returns every diploma matching the business key
// (nationalID, institution, course, level). More than one match means the
// advisory uniqueness of the business key has been violated.
func (c *DiplomaContract) QueryDiplomasByPrimKey(ctx contractapi.TransactionContextInterface, nationalID, institution, course, level string) ([]*models.Diploma, error) {
	return c.queryDiplomas(ctx, map[string]string{
		"nationalID":  nationalID,
		"institution": institution,
		"course":      course,
		"level":       level,
	})
}

// QueryDiplomasByName returns every diploma issued to the given first and
// last name.
func (c *DiplomaContract) QueryDiplomasByName(ctx contractapi.TransactionContextInterface, firstName, lastName string) ([]*models.Diploma, error) {
	return c.queryDiplomas(ctx, map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
	})
}

// QueryDiplomasByNationalID returns every diploma issued to the holder of
// the given national ID.
func (c *DiplomaContract) QueryDiplomasByNationalID(ctx contractapi.TransactionContextInterface, nationalID string) ([]*models.Diploma, error) {
	return c.queryDiplomas(ctx, map[string]string{
		"nationalID": nationalID,
	})
}

// queryDiplomas runs an equality selector against the state database index
// and decodes every match. Zero matches yields an empty list, not an error.
func (c *DiplomaContract) queryDiplomas(ctx contractapi.TransactionContextInterface, selector map[string]string) ([]*models.Diploma, error) {
	query, err := json.Marshal(richQuery{Selector: selector})
	if err != nil {
		return nil, fmt.Errorf("failed to build selector query: %v", err)
	}

	iterator, err := ctx.GetStub().GetQueryResult(string(query))
	if err != nil {
		return nil, fmt.Errorf("failed to run selector query: %v", err)
	}
	defer iterator.Close()

	diplomas := make([]*models.Diploma, 0)
	for iterator.HasNext() {
		kv, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate query results: %v", err)
		}
		if len(kv.Value) == 0 {
			continue
		}

		var diploma models.Diploma
		if err := json.Unmarshal(kv.Value, &diploma); err != nil {
			return nil, fmt.Errorf("failed to decode diploma %s: %v", kv.Key, err)
		}
		diplomas = append(diplomas, &diploma)
	}

	return diplomas, nil
}
