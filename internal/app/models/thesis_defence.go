package models

// ThesisDefence is one scheduled or completed thesis defence. A nil Grade
// means the thesis has not been defended or graded yet; only graded rows
// ever produce a diploma.
type ThesisDefence struct {
	InstitutionID int64   `json:"institutionId" db:"institution_id"`
	StudentID     string  `json:"studentId" db:"student_id"`
	DueDate       string  `json:"dueDate" db:"due_date"`
	DateOfDefence string  `json:"dateOfDefence" db:"date_of_defence"`
	Seq           int     `json:"seq" db:"seq"`
	CourseID      int64   `json:"courseId" db:"course_id"`
	Degree        string  `json:"degree" db:"degree"`
	Grade         *string `json:"grade,omitempty" db:"grade"`
}
