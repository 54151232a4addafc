package models

// Student defines the student model based on the 'students' reference table
type Student struct {
	StudentID     string `json:"studentId" db:"student_id"`           // Student's unique identifier
	NationalID    string `json:"nationalId" db:"national_id"`         // National identification number
	FirstName     string `json:"firstName" db:"first_name"`
	LastName      string `json:"lastName" db:"last_name"`
	DateOfBirth   string `json:"dateOfBirth" db:"date_of_birth"`      // ISO date, stored as text on the diploma
	PlaceOfBirth  string `json:"placeOfBirth" db:"place_of_birth"`
	InstitutionID int64  `json:"institutionId" db:"institution_id"`   // Leaf of the student's institution chain
}
