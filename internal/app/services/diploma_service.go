package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

// dateLayout is the ISO date format used for defence dates and dates of issue.
const dateLayout = "2006-01-02"

// StudentReader is the slice of the reference store the assembler needs for
// student rows.
type StudentReader interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
}

// CourseReader resolves courses by their composite key.
type CourseReader interface {
	GetByID(ctx context.Context, courseID, institutionID int64) (*models.Course, error)
}

// ThesisDefenceReader serves graded thesis defence rows.
type ThesisDefenceReader interface {
	LatestGraded(ctx context.Context, institutionID int64, studentID string) (*models.ThesisDefence, error)
	GradedOnDate(ctx context.Context, dateOfDefence string) ([]*models.ThesisDefence, error)
}

// DiplomaLedger is the slice of the ledger client the assembler needs.
type DiplomaLedger interface {
	QueryByPrimKey(ctx context.Context, key models.BusinessKey) ([]*models.Diploma, error)
	Create(ctx context.Context, d *models.Diploma) error
}

// DiplomaService assembles diploma records from the reference store and
// writes them to the ledger.
type DiplomaService struct {
	students StudentReader
	courses  CourseReader
	defences ThesisDefenceReader
	resolver *InstitutionResolver
	ledger   DiplomaLedger
	now      func() time.Time
}

// NewDiplomaService creates a new DiplomaService
func NewDiplomaService(
	students StudentReader,
	courses CourseReader,
	defences ThesisDefenceReader,
	resolver *InstitutionResolver,
	ledger DiplomaLedger,
) *DiplomaService {
	return &DiplomaService{
		students: students,
		courses:  courses,
		defences: defences,
		resolver: resolver,
		ledger:   ledger,
		now:      time.Now,
	}
}

// CreateFromStudent issues a diploma for the student's most recent graded
// thesis defence. The defence and course are looked up at the root of the
// student's institution chain.
func (s *DiplomaService) CreateFromStudent(ctx context.Context, studentID string) (*models.Diploma, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	chain, err := s.resolver.Resolve(ctx, student.InstitutionID)
	if err != nil {
		return nil, err
	}

	defence, err := s.defences.LatestGraded(ctx, chain.RootID, studentID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, student, chain, defence.CourseID, defence.Degree)
}

// BatchFailure records why one defence row of a batch produced no diploma.
type BatchFailure struct {
	StudentID string `json:"studentId"`
	Err       error  `json:"-"`
	Reason    string `json:"reason"`
}

// BatchResult reports the outcome of a defence-date batch: the diplomas
// created and a failure entry per row that could not be processed.
type BatchResult struct {
	Created  []*models.Diploma `json:"created"`
	Failures []BatchFailure    `json:"failures"`
}

// CreateAllForDefenceDate issues a diploma for every graded defence held on
// the given date. A failing row is recorded and skipped; it never aborts
// the rows after it.
func (s *DiplomaService) CreateAllForDefenceDate(ctx context.Context, dateOfDefence string) (*BatchResult, error) {
	if _, err := time.Parse(dateLayout, dateOfDefence); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidDate,
			fmt.Sprintf("unable to parse date %q", dateOfDefence))
	}

	defences, err := s.defences.GradedOnDate(ctx, dateOfDefence)
	if err != nil {
		return nil, err
	}
	if len(defences) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDefenceNotFound,
			fmt.Sprintf("no defences found on date %s", dateOfDefence))
	}

	result := &BatchResult{
		Created:  make([]*models.Diploma, 0, len(defences)),
		Failures: make([]BatchFailure, 0),
	}
	for _, defence := range defences {
		diploma, err := s.createForDefence(ctx, defence)
		if err != nil {
			result.Failures = append(result.Failures, BatchFailure{
				StudentID: defence.StudentID,
				Err:       err,
				Reason:    err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, diploma)
	}

	return result, nil
}

// createForDefence runs the single-student flow from a known defence row.
func (s *DiplomaService) createForDefence(ctx context.Context, defence *models.ThesisDefence) (*models.Diploma, error) {
	student, err := s.students.GetByID(ctx, defence.StudentID)
	if err != nil {
		return nil, err
	}

	chain, err := s.resolver.Resolve(ctx, defence.InstitutionID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, student, chain, defence.CourseID, defence.Degree)
}

// assemble resolves the course, checks the business key for an existing
// diploma, and submits the creation.
//
// The duplicate check and the create are two separate ledger round trips
// with no lock between them: two concurrent invocations for the same
// business key can both pass the check and both create. The ledger enforces
// uniqueness only on diplomaID.
func (s *DiplomaService) assemble(ctx context.Context, student *models.Student, chain *ResolvedChain, courseID int64, degree string) (*models.Diploma, error) {
	course, err := s.courses.GetByID(ctx, courseID, chain.RootID)
	if err != nil {
		return nil, err
	}

	key := models.BusinessKey{
		NationalID:  student.NationalID,
		Institution: chain.Label,
		Course:      course.Name,
		Level:       course.LevelOfStudy,
	}
	existing, err := s.ledger.QueryByPrimKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDiplomaAlreadyExists,
			fmt.Sprintf("diploma with the given parameters already exists: %s", existing[0].DiplomaID))
	}

	now := s.now()
	diploma := &models.Diploma{
		DiplomaID:    fmt.Sprintf("diploma%d", now.UnixMilli()),
		NationalID:   student.NationalID,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		DateOfBirth:  student.DateOfBirth,
		PlaceOfBirth: student.PlaceOfBirth,
		DateOfIssue:  now.Format(dateLayout),
		Institution:  chain.Label,
		Course:       course.Name,
		Level:        course.LevelOfStudy,
		Degree:       degree,
	}

	if err := s.ledger.Create(ctx, diploma); err != nil {
		return nil, err
	}

	return diploma, nil
}
