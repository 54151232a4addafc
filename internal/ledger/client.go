package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

// Chaincode transaction names. These match the exported method names of the
// contract in internal/chaincode.
const (
	txReadDiploma       = "ReadDiploma"
	txGetAllDiplomas    = "GetAllDiplomas"
	txQueryByPrimKey    = "QueryDiplomasByPrimKey"
	txQueryByName       = "QueryDiplomasByName"
	txQueryByNationalID = "QueryDiplomasByNationalID"
	txCreateDiploma     = "CreateDiploma"
	txUpdateDiploma     = "UpdateDiploma"
	txDeleteDiploma     = "DeleteDiploma"
)

// Transactor runs named transactions against the diploma chaincode.
// Evaluate is a read-only query served by a single peer; Submit endorses and
// commits a state change. Both block for a full network round trip and honor
// the caller's context.
type Transactor interface {
	Evaluate(ctx context.Context, name string, args ...string) ([]byte, error)
	Submit(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DiplomaClient is the typed client for the diploma chaincode. It translates
// between Go values and the chaincode's string-argument interface and maps
// chaincode failures into the application error taxonomy.
type DiplomaClient struct {
	tx Transactor
}

// NewDiplomaClient creates a new DiplomaClient
func NewDiplomaClient(tx Transactor) *DiplomaClient {
	return &DiplomaClient{tx: tx}
}

// Read returns the diploma stored under diplomaID.
func (c *DiplomaClient) Read(ctx context.Context, diplomaID string) (*models.Diploma, error) {
	payload, err := c.tx.Evaluate(ctx, txReadDiploma, diplomaID)
	if err != nil {
		return nil, mapChaincodeError(txReadDiploma, err)
	}

	var diploma models.Diploma
	if err := json.Unmarshal(payload, &diploma); err != nil {
		return nil, fmt.Errorf("failed to decode diploma payload: %w", err)
	}
	return &diploma, nil
}

// GetAll returns every diploma on the ledger.
func (c *DiplomaClient) GetAll(ctx context.Context) ([]*models.Diploma, error) {
	payload, err := c.tx.Evaluate(ctx, txGetAllDiplomas)
	if err != nil {
		return nil, mapChaincodeError(txGetAllDiplomas, err)
	}
	return decodeDiplomaList(payload)
}

// QueryByPrimKey returns every diploma matching the business key.
func (c *DiplomaClient) QueryByPrimKey(ctx context.Context, key models.BusinessKey) ([]*models.Diploma, error) {
	payload, err := c.tx.Evaluate(ctx, txQueryByPrimKey,
		key.NationalID, key.Institution, key.Course, key.Level)
	if err != nil {
		return nil, mapChaincodeError(txQueryByPrimKey, err)
	}
	return decodeDiplomaList(payload)
}

// QueryByName returns every diploma issued to the given name.
func (c *DiplomaClient) QueryByName(ctx context.Context, firstName, lastName string) ([]*models.Diploma, error) {
	payload, err := c.tx.Evaluate(ctx, txQueryByName, firstName, lastName)
	if err != nil {
		return nil, mapChaincodeError(txQueryByName, err)
	}
	return decodeDiplomaList(payload)
}

// QueryByNationalID returns every diploma issued to the holder of nationalID.
func (c *DiplomaClient) QueryByNationalID(ctx context.Context, nationalID string) ([]*models.Diploma, error) {
	payload, err := c.tx.Evaluate(ctx, txQueryByNationalID, nationalID)
	if err != nil {
		return nil, mapChaincodeError(txQueryByNationalID, err)
	}
	return decodeDiplomaList(payload)
}

// Create submits a new diploma record.
func (c *DiplomaClient) Create(ctx context.Context, d *models.Diploma) error {
	_, err := c.tx.Submit(ctx, txCreateDiploma,
		d.DiplomaID, d.NationalID, d.FirstName, d.LastName, d.DateOfBirth,
		d.PlaceOfBirth, d.DateOfIssue, d.Institution, d.Course, d.Level, d.Degree)
	if err != nil {
		return mapChaincodeError(txCreateDiploma, err)
	}
	return nil
}

// Update replaces the diploma stored under d.DiplomaID wholesale.
func (c *DiplomaClient) Update(ctx context.Context, d *models.Diploma) error {
	_, err := c.tx.Submit(ctx, txUpdateDiploma,
		d.DiplomaID, d.NationalID, d.FirstName, d.LastName, d.DateOfBirth,
		d.PlaceOfBirth, d.DateOfIssue, d.Institution, d.Course, d.Level, d.Degree)
	if err != nil {
		return mapChaincodeError(txUpdateDiploma, err)
	}
	return nil
}

// Delete removes the diploma stored under diplomaID.
func (c *DiplomaClient) Delete(ctx context.Context, diplomaID string) error {
	_, err := c.tx.Submit(ctx, txDeleteDiploma, diplomaID)
	if err != nil {
		return mapChaincodeError(txDeleteDiploma, err)
	}
	return nil
}

func decodeDiplomaList(payload []byte) ([]*models.Diploma, error) {
	diplomas := make([]*models.Diploma, 0)
	if len(payload) == 0 {
		return diplomas, nil
	}
	if err := json.Unmarshal(payload, &diplomas); err != nil {
		return nil, fmt.Errorf("failed to decode diploma list payload: %w", err)
	}
	return diplomas, nil
}

// mapChaincodeError classifies a failed transaction. The chaincode reports
// state-machine violations in its error message; everything else is an
// endorsement, commit or network failure and fatal to the operation.
func mapChaincodeError(txName string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "does not exist"):
		return apperrors.NewCustomError(apperrors.ErrNotFound, msg)
	case strings.Contains(msg, "already exists"):
		return apperrors.NewCustomError(apperrors.ErrAlreadyExists, msg)
	default:
		return apperrors.NewTransportError(txName, err)
	}
}
