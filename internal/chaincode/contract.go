package chaincode

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bureauchain/diplomachain/internal/app/models"
)

// DiplomaContract is the smart contract managing diploma records in world
// state. The receiver holds no state of its own: every transaction operates
// only on the storage handle supplied by the transaction context, so the
// same contract instance can serve any number of concurrent invocations.
type DiplomaContract struct {
	contractapi.Contract
}

// DiplomaExists returns true when a non-empty value is stored under diplomaID.
func (c *DiplomaContract) DiplomaExists(ctx contractapi.TransactionContextInterface, diplomaID string) (bool, error) {
	data, err := ctx.GetStub().GetState(diplomaID)
	if err != nil {
		return false, fmt.Errorf("failed to read world state: %v", err)
	}

	return len(data) > 0, nil
}

// ReadDiploma returns the diploma stored under diplomaID.
func (c *DiplomaContract) ReadDiploma(ctx contractapi.TransactionContextInterface, diplomaID string) (*models.Diploma, error) {
	data, err := ctx.GetStub().GetState(diplomaID)
	if err != nil {
		return nil, fmt.Errorf("failed to read world state: %v", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("the diploma %s does not exist", diplomaID)
	}

	var diploma models.Diploma
	if err := json.Unmarshal(data, &diploma); err != nil {
		return nil, fmt.Errorf("failed to decode diploma %s: %v", diplomaID, err)
	}

	return &diploma, nil
}

// CreateDiploma stores a new diploma record under diplomaID. It fails when a
// record already exists under that ID.
func (c *DiplomaContract) CreateDiploma(ctx contractapi.TransactionContextInterface, diplomaID, nationalID, firstName, lastName, dateOfBirth, placeOfBirth, dateOfIssue, institution, course, level, degree string) error {
	exists, err := c.DiplomaExists(ctx, diplomaID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("the diploma %s already exists", diplomaID)
	}

	diploma := models.Diploma{
		DiplomaID:    diplomaID,
		NationalID:   nationalID,
		FirstName:    firstName,
		LastName:     lastName,
		DateOfBirth:  dateOfBirth,
		PlaceOfBirth: placeOfBirth,
		DateOfIssue:  dateOfIssue,
		Institution:  institution,
		Course:       course,
		Level:        level,
		Degree:       degree,
	}

	data, err := json.Marshal(diploma)
	if err != nil {
		return fmt.Errorf("failed to encode diploma %s: %v", diplomaID, err)
	}

	return ctx.GetStub().PutState(diplomaID, data)
}

// UpdateDiploma replaces the record stored under diplomaID wholesale. There
// is no partial-field merge; callers supply every field.
func (c *DiplomaContract) UpdateDiploma(ctx contractapi.TransactionContextInterface, diplomaID, nationalID, firstName, lastName, dateOfBirth, placeOfBirth, dateOfIssue, institution, course, level, degree string) error {
	exists, err := c.DiplomaExists(ctx, diplomaID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("the diploma %s does not exist", diplomaID)
	}

	diploma := models.Diploma{
		DiplomaID:    diplomaID,
		NationalID:   nationalID,
		FirstName:    firstName,
		LastName:     lastName,
		DateOfBirth:  dateOfBirth,
		PlaceOfBirth: placeOfBirth,
		DateOfIssue:  dateOfIssue,
		Institution:  institution,
		Course:       course,
		Level:        level,
		Degree:       degree,
	}

	data, err := json.Marshal(diploma)
	if err != nil {
		return fmt.Errorf("failed to encode diploma %s: %v", diplomaID, err)
	}

	return ctx.GetStub().PutState(diplomaID, data)
}

// DeleteDiploma removes the record stored under diplomaID.
func (c *DiplomaContract) DeleteDiploma(ctx contractapi.TransactionContextInterface, diplomaID string) error {
	exists, err := c.DiplomaExists(ctx, diplomaID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("the diploma %s does not exist", diplomaID)
	}

	return ctx.GetStub().DelState(diplomaID)
}

// GetAllDiplomas returns every diploma in world state. Order follows the
// ledger's own key iteration and carries no meaning.
func (c *DiplomaContract) GetAllDiplomas(ctx contractapi.TransactionContextInterface) ([]*models.Diploma, error) {
	iterator, err := ctx.GetStub().GetStateByRange("", "")
	if err != nil {
		return nil, fmt.Errorf("failed to read world state: %v", err)
	}
	defer iterator.Close()

	diplomas := make([]*models.Diploma, 0)
	for iterator.HasNext() {
		kv, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate world state: %v", err)
		}
		// Empty values are tombstones or partial writes, not records.
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
