package models

// Course defines a course offered by an institution. Courses are keyed by
// (course ID, institution ID); the same course ID may exist at several
// institutions.
type Course struct {
	ID            int64  `json:"id" db:"course_id"`
	InstitutionID int64  `json:"institutionId" db:"institution_id"`
	Name          string `json:"name" db:"course_name"`
	LevelOfStudy  string `json:"levelOfStudy" db:"level_of_study"`
}
