package chaincode

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bureauchain/diplomachain/internal/app/models"
)

type DiplomaQueriesSuite struct {
	suite.Suite
	contract *DiplomaContract
	stub     *fakeStub
}

func (s *DiplomaQueriesSuite) SetupTest() {
	s.contract = &DiplomaContract{}
	s.stub = newFakeStub()
}

func TestDiplomaQueriesSuite(t *testing.T) {
	suite.Run(t, new(DiplomaQueriesSuite))
}

func (s *DiplomaQueriesSuite) create(d models.Diploma) {
	err := s.contract.CreateDiploma(newTestContext(s.stub),
		d.DiplomaID, d.NationalID, d.FirstName, d.LastName, d.DateOfBirth,
		d.PlaceOfBirth, d.DateOfIssue, d.Institution, d.Course, d.Level, d.Degree)
	s.Require().NoError(err)
}

func diplomaIDs(diplomas []*models.Diploma) map[string]bool {
	ids := make(map[string]bool)
	for _, d := range diplomas {
		ids[d.DiplomaID] = true
	}
	return ids
}

func (s *DiplomaQueriesSuite) TestQueryByNationalIDReturnsExactSubset() {
	d1 := sampleDiploma("diploma1")
	d2 := sampleDiploma("diploma2")
	d2.Course = "Physics"
	d3 := sampleDiploma("diploma3")
	d3.NationalID = "55566677788"
	s.create(d1)
	s.create(d2)
	s.create(d3)

	got, err := s.contract.QueryDiplomasByNationalID(newTestContext(s.stub), "11122233344")
	s.Require().NoError(err)
	s.Equal(map[string]bool{"diploma1": true, "diploma2": true}, diplomaIDs(got))
}

func (s *DiplomaQueriesSuite) TestQueryByPrimKeyMatchesAllFourFields() {
	d1 := sampleDiploma("diploma1")
	d2 := sampleDiploma("diploma2")
	d2.Level = "graduate" // same national ID, institution and course
	s.create(d1)
	s.create(d2)

	got, err := s.contract.QueryDiplomasByPrimKey(newTestContext(s.stub),
		d1.NationalID, d1.Institution, d1.Course, d1.Level)
	s.Require().NoError(err)
	s.Equal(map[string]bool{"diploma1": true}, diplomaIDs(got))
}

func (s *DiplomaQueriesSuite) TestQueryByName() {
	d1 := sampleDiploma("diploma1")
	d2 := sampleDiploma("diploma2")
	d2.FirstName = "Ivo"
	s.create(d1)
	s.create(d2)

	got, err := s.contract.QueryDiplomasByName(newTestContext(s.stub), "Ana", "Horvat")
	s.Require().NoError(err)
	s.Equal(map[string]bool{"diploma1": true}, diplomaIDs(got))
}

func (s *DiplomaQueriesSuite) TestZeroMatchesReturnsEmptyListNotError() {
	s.create(sampleDiploma("diploma1"))

	got, err := s.contract.QueryDiplomasByNationalID(newTestContext(s.stub), "00000000000")
	s.Require().NoError(err)
	s.Empty(got)
	s.NotNil(got)
}

func (s *DiplomaQueriesSuite) TestEmptyStoredValuesAreSkipped() {
	s.create(sampleDiploma("diploma1"))
	s.Require().NoError(s.stub.PutState("diploma2", []byte{}))

	got, err := s.contract.QueryDiplomasByNationalID(newTestContext(s.stub), "11122233344")
	s.Require().NoError(err)
	s.Equal(map[string]bool{"diploma1": true}, diplomaIDs(got))
}
