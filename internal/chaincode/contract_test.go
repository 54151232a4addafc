package chaincode

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bureauchain/diplomachain/internal/app/models"
)

type DiplomaContractSuite struct {
	suite.Suite
	contract *DiplomaContract
	stub     *fakeStub
}

func (s *DiplomaContractSuite) SetupTest() {
	s.contract = &DiplomaContract{}
	s.stub = newFakeStub()
}

func TestDiplomaContractSuite(t *testing.T) {
	suite.Run(t, new(DiplomaContractSuite))
}

func (s *DiplomaContractSuite) createSample(diplomaID string) models.Diploma {
	d := sampleDiploma(diplomaID)
	err := s.contract.CreateDiploma(newTestContext(s.stub),
		d.DiplomaID, d.NationalID, d.FirstName, d.LastName, d.DateOfBirth,
		d.PlaceOfBirth, d.DateOfIssue, d.Institution, d.Course, d.Level, d.Degree)
	s.Require().NoError(err)
	return d
}

func sampleDiploma(diplomaID string) models.Diploma {
	return models.Diploma{
		DiplomaID:    diplomaID,
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
}

func (s *DiplomaContractSuite) TestCreateThenReadReturnsExactFields() {
	want := s.createSample("diploma1")

	got, err := s.contract.ReadDiploma(newTestContext(s.stub), "diploma1")
	s.Require().NoError(err)
	s.Equal(&want, got)
}

func (s *DiplomaContractSuite) TestDiplomaExists() {
	s.Run("absent key", func() {
		exists, err := s.contract.DiplomaExists(newTestContext(s.stub), "diploma1")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("present key", func() {
		s.createSample("diploma1")
		exists, err := s.contract.DiplomaExists(newTestContext(s.stub), "diploma1")
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("empty stored value counts as absent", func() {
		s.Require().NoError(s.stub.PutState("diploma2", nil))
		exists, err := s.contract.DiplomaExists(newTestContext(s.stub), "diploma2")
		s.Require().NoError(err)
		s.False(exists)
	})
}

func (s *DiplomaContractSuite) TestReadAbsentFails() {
	_, err := s.contract.ReadDiploma(newTestContext(s.stub), "diploma1")
	s.Require().Error(err)
	s.Contains(err.Error(), "does not exist")
}

func (s *DiplomaContractSuite) TestCreateDuplicateFailsAndLeavesStateUnchanged() {
	original := s.createSample("diploma1")

	err := s.contract.CreateDiploma(newTestContext(s.stub),
		"diploma1", "99999999999", "Ivo", "Ivic", "2000-01-01",
		"Split", "2025-01-01", "University Y", "Physics", "graduate", "MSc")
	s.Require().Error(err)
	s.Contains(err.Error(), "already exists")

	got, readErr := s.contract.ReadDiploma(newTestContext(s.stub), "diploma1")
	s.Require().NoError(readErr)
	s.Equal(&original, got)
}

func (s *DiplomaContractSuite) TestUpdateReplacesWholesale() {
	s.createSample("diploma1")

	err := s.contract.UpdateDiploma(newTestContext(s.stub),
		"diploma1", "99999999999", "Ivo", "Ivic", "2000-01-01",
		"Split", "2025-01-01", "University Y", "Physics", "graduate", "MSc")
	s.Require().NoError(err)

	got, err := s.contract.ReadDiploma(newTestContext(s.stub), "diploma1")
	s.Require().NoError(err)
	s.Equal("Physics", got.Course)
	s.Equal("Ivo", got.FirstName)
	// No field survives from the original record.
	s.Equal("99999999999", got.NationalID)
}

func (s *DiplomaContractSuite) TestUpdateAbsentFailsAndWritesNothing() {
	err := s.contract.UpdateDiploma(newTestContext(s.stub),
		"diploma1", "99999999999", "Ivo", "Ivic", "2000-01-01",
		"Split", "2025-01-01", "University Y", "Physics", "graduate", "MSc")
	s.Require().Error(err)
	s.Contains(err.Error(), "does not exist")

	exists, err := s.contract.DiplomaExists(newTestContext(s.stub), "diploma1")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *DiplomaContractSuite) TestDeleteThenReadFails() {
	s.createSample("diploma1")

	s.Require().NoError(s.contract.DeleteDiploma(newTestContext(s.stub), "diploma1"))

	_, err := s.contract.ReadDiploma(newTestContext(s.stub), "diploma1")
	s.Require().Error(err)
	s.Contains(err.Error(), "does not exist")
}

func (s *DiplomaContractSuite) TestDeleteAbsentFails() {
	err := s.contract.DeleteDiploma(newTestContext(s.stub), "diploma1")
	s.Require().Error(err)
	s.Contains(err.Error(), "does not exist")
}

func (s *DiplomaContractSuite) TestGetAllDiplomas() {
	s.createSample("diploma1")
	s.createSample("diploma2")
	s.createSample("diploma3")
	// A tombstone in the keyspace must be skipped, not decoded.
	s.Require().NoError(s.stub.PutState("diploma4", []byte{}))

	diplomas, err := s.contract.GetAllDiplomas(newTestContext(s.stub))
	s.Require().NoError(err)

	ids := make(map[string]bool)
	for _, d := range diplomas {
		ids[d.DiplomaID] = true
	}
	s.Equal(map[string]bool{"diploma1": true, "diploma2": true, "diploma3": true}, ids)
}

func (s *DiplomaContractSuite) TestGetAllDiplomasEmptyState() {
	diplomas, err := s.contract.GetAllDiplomas(newTestContext(s.stub))
	s.Require().NoError(err)
	s.Empty(diplomas)
	s.NotNil(diplomas)
}
