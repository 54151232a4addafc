package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every reference-store repository so the bootstrap
// can wire a single value. All repositories share one connection pool; the
// pool scopes acquisition and guarantees release per call, so no repository
// holds a connection between calls.
type Repositories struct {
	Students       *StudentRepository
	Institutions   *InstitutionRepository
	Courses        *CourseRepository
	ThesisDefences *ThesisDefenceRepository
}

// NewRepositories creates the repository set on a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:       NewStudentRepository(db),
		Institutions:   NewInstitutionRepository(db),
		Courses:        NewCourseRepository(db),
		ThesisDefences: NewThesisDefenceRepository(db),
	}
}
