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

// StudentRepository handles read-only access to the students reference table
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a student by their student ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"student_id", "national_id", "first_name", "last_name",
		"date_of_birth", "place_of_birth", "institution_id").
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.StudentID,
		&student.NationalID,
		&student.FirstName,
		&student.LastName,
		&student.DateOfBirth,
		&student.PlaceOfBirth,
		&student.InstitutionID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student with studentID %s does not exist", studentID))
		}
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}
