package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

type fakeInstitutions struct {
	byID map[int64]*models.Institution
}

func (f *fakeInstitutions) GetByID(ctx context.Context, institutionID int64) (*models.Institution, error) {
	institution, ok := f.byID[institutionID]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInstitutionNotFound,
			fmt.Sprintf("institution with institutionID %d does not exist", institutionID))
	}
	return institution, nil
}

type fakeStudents struct {
	byID map[string]*models.Student
}

func (f *fakeStudents) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, ok := f.byID[studentID]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
			fmt.Sprintf("student with studentID %s does not exist", studentID))
	}
	return student, nil
}

type courseKey struct {
	courseID      int64
	institutionID int64
}

type fakeCourses struct {
	byKey map[courseKey]*models.Course
}

func (f *fakeCourses) GetByID(ctx context.Context, courseID, institutionID int64) (*models.Course, error) {
	course, ok := f.byKey[courseKey{courseID, institutionID}]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
			fmt.Sprintf("course %d at institution %d does not exist", courseID, institutionID))
	}
	return course, nil
}

type fakeDefences struct {
	latest map[string]*models.ThesisDefence // keyed by "institutionID/studentID"
	onDate map[string][]*models.ThesisDefence
}

func defenceKey(institutionID int64, studentID string) string {
	return fmt.Sprintf("%d/%s", institutionID, studentID)
}

func (f *fakeDefences) LatestGraded(ctx context.Context, institutionID int64, studentID string) (*models.ThesisDefence, error) {
	defence, ok := f.latest[defenceKey(institutionID, studentID)]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrDefenceNotFound,
			fmt.Sprintf("student with studentID %s has not defended any theses", studentID))
	}
	return defence, nil
}

func (f *fakeDefences) GradedOnDate(ctx context.Context, dateOfDefence string) ([]*models.ThesisDefence, error) {
	return f.onDate[dateOfDefence], nil
}

// fakeLedger keeps created diplomas in memory and serves the business-key
// query from them. An optional barrier lets a test force two invocations to
// both finish their duplicate check before either create runs.
type fakeLedger struct {
	mu      sync.Mutex
	records []*models.Diploma

	queryBarrier *sync.WaitGroup
}

func (f *fakeLedger) QueryByPrimKey(ctx context.Context, key models.BusinessKey) ([]*models.Diploma, error) {
	f.mu.Lock()
	matches := make([]*models.Diploma, 0)
	for _, d := range f.records {
		if d.Key() == key {
			matches = append(matches, d)
		}
	}
	f.mu.Unlock()

	if f.queryBarrier != nil {
		f.queryBarrier.Done()
		f.queryBarrier.Wait()
	}
	return matches, nil
}

func (f *fakeLedger) Create(ctx context.Context, d *models.Diploma) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.records {
		if existing.DiplomaID == d.DiplomaID {
			return apperrors.NewCustomError(apperrors.ErrAlreadyExists,
				fmt.Sprintf("the diploma %s already exists", d.DiplomaID))
		}
	}
	f.records = append(f.records, d)
	return nil
}
