package dto

import "github.com/bureauchain/diplomachain/internal/app/models"

// UpdateDiplomaRequest carries every field of a diploma record; updates
// replace the stored record wholesale.
type UpdateDiplomaRequest struct {
	NationalID   string `json:"nationalID" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	DateOfBirth  string `json:"dateOfBirth" binding:"required"`
	PlaceOfBirth string `json:"placeOfBirth" binding:"required"`
	DateOfIssue  string `json:"dateOfIssue" binding:"required"`
	Institution  string `json:"institution" binding:"required"`
	Course       string `json:"course" binding:"required"`
	Level        string `json:"level" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
}

// ToModel builds the full ledger record for diplomaID from the request.
func (r *UpdateDiplomaRequest) ToModel(diplomaID string) *models.Diploma {
	return &models.Diploma{
		DiplomaID:    diplomaID,
		NationalID:   r.NationalID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		PlaceOfBirth: r.PlaceOfBirth,
		DateOfIssue:  r.DateOfIssue,
		Institution:  r.Institution,
		Course:       r.Course,
		Level:        r.Level,
		Degree:       r.Degree,
	}
}

// BatchIssueRequest selects the defence date for a batch issuing run.
type BatchIssueRequest struct {
	DateOfDefence string `json:"dateOfDefence" binding:"required" example:"2024-09-15"`
}

// BatchFailureResponse reports one defence row the batch could not issue for.
type BatchFailureResponse struct {
	StudentID string `json:"studentID"`
	Reason    string `json:"reason"`
}

// BatchIssueResponse is the outcome of a batch issuing run.
type BatchIssueResponse struct {
	Created  []*models.Diploma      `json:"created"`
	Failures []BatchFailureResponse `json:"failures"`
}
