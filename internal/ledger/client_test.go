package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

// fakeTransactor records the last transaction and replays a canned response.
type fakeTransactor struct {
	lastName string
	lastArgs []string
	payload  []byte
	err      error
}

func (f *fakeTransactor) Evaluate(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.lastName = name
	f.lastArgs = args
	return f.payload, f.err
}

func (f *fakeTransactor) Submit(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.lastName = name
	f.lastArgs = args
	return f.payload, f.err
}

func TestReadDecodesDiploma(t *testing.T) {
	tx := &fakeTransactor{payload: []byte(`{"diplomaID":"diploma1","nationalID":"11122233344"}`)}
	client := NewDiplomaClient(tx)

	diploma, err := client.Read(context.Background(), "diploma1")
	require.NoError(t, err)
	assert.Equal(t, "ReadDiploma", tx.lastName)
	assert.Equal(t, []string{"diploma1"}, tx.lastArgs)
	assert.Equal(t, "diploma1", diploma.DiplomaID)
	assert.Equal(t, "11122233344", diploma.NationalID)
}

func TestReadMapsNotFound(t *testing.T) {
	tx := &fakeTransactor{err: errors.New("the diploma diploma1 does not exist")}
	client := NewDiplomaClient(tx)

	_, err := client.Read(context.Background(), "diploma1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateMapsAlreadyExists(t *testing.T) {
	tx := &fakeTransactor{err: errors.New("the diploma diploma1 already exists")}
	client := NewDiplomaClient(tx)

	err := client.Create(context.Background(), &models.Diploma{DiplomaID: "diploma1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestUnclassifiedFailureIsTransport(t *testing.T) {
	tx := &fakeTransactor{err: errors.New("rpc error: code = Unavailable")}
	client := NewDiplomaClient(tx)

	_, err := client.GetAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	// The failing transaction is named so the caller can act on it.
	assert.Contains(t, err.Error(), "GetAllDiplomas")
}

func TestCreateSubmitsArgumentsInContractOrder(t *testing.T) {
	tx := &fakeTransactor{}
	client := NewDiplomaClient(tx)

	d := &models.Diploma{
		DiplomaID:    "diploma1",
		NationalID:   "11122233344",
		FirstName:    "Ana",
		LastName:     "Horvat",
		DateOfBirth:  "1999-04-12",
		PlaceOfBirth: "Zagreb",
		DateOfIssue:  "2024-09-30",
		Institution:  "Dept of Math, Faculty of Science, University X",
		Course:       "Mathematics",
		Level:        "undergraduate",
		Degree:       "BSc",
	}
	require.NoError(t, client.Create(context.Background(), d))

	assert.Equal(t, "CreateDiploma", tx.lastName)
	assert.Equal(t, []string{
		"diploma1", "11122233344", "Ana", "Horvat", "1999-04-12", "Zagreb",
		"2024-09-30", "Dept of Math, Faculty of Science, University X",
		"Mathematics", "undergraduate", "BSc",
	}, tx.lastArgs)
}

func TestQueryByPrimKeyDecodesList(t *testing.T) {
	tx := &fakeTransactor{payload: []byte(`[{"diplomaID":"diploma1"},{"diplomaID":"diploma2"}]`)}
	client := NewDiplomaClient(tx)

	diplomas, err := client.QueryByPrimKey(context.Background(), models.BusinessKey{
		NationalID:  "11122233344",
		Institution: "University X",
		Course:      "Mathematics",
		Level:       "undergraduate",
	})
	require.NoError(t, err)
	assert.Equal(t, "QueryDiplomasByPrimKey", tx.lastName)
	assert.Equal(t, []string{"11122233344", "University X", "Mathematics", "undergraduate"}, tx.lastArgs)
	require.Len(t, diplomas, 2)
}

func TestEmptyQueryPayloadYieldsEmptyList(t *testing.T) {
	tx := &fakeTransactor{payload: []byte(`[]`)}
	client := NewDiplomaClient(tx)

	diplomas, err := client.QueryByNationalID(context.Background(), "11122233344")
	require.NoError(t, err)
	assert.NotNil(t, diplomas)
	assert.Empty(t, diplomas)
}
