package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

// CourseRepository handles read-only access to the courses reference table
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a course by its composite key (courseID, institutionID).
func (r *CourseRepository) GetByID(ctx context.Context, courseID, institutionID int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("course_id", "institution_id", "course_name", "level_of_study").
		From("courses").
		Where(squirrel.Eq{"course_id": courseID, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.InstitutionID,
		&course.Name,
		&course.LevelOfStudy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
				fmt.Sprintf("course %d at institution %d does not exist", courseID, institutionID))
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}
