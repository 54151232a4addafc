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

// ThesisDefenceRepository handles read-only access to the thesis_defences
// reference table. Only graded rows (grade IS NOT NULL) are ever returned;
// an ungraded defence cannot produce a diploma.
type ThesisDefenceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewThesisDefenceRepository creates a new ThesisDefenceRepository
func NewThesisDefenceRepository(db *pgxpool.Pool) *ThesisDefenceRepository {
	return &ThesisDefenceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDefence(row pgx.Row) (*models.ThesisDefence, error) {
	defence := &models.ThesisDefence{}
	err := row.Scan(
		&defence.InstitutionID,
		&defence.StudentID,
		&defence.DueDate,
		&defence.DateOfDefence,
		&defence.Seq,
		&defence.CourseID,
		&defence.Degree,
		&defence.Grade,
	)
	if err != nil {
		return nil, err
	}
	return defence, nil
}

// LatestGraded returns the most recent graded defence of a student at an
// institution: newest due date first, ties broken by defence date, then by
// sequence number.
func (r *ThesisDefenceRepository) LatestGraded(ctx context.Context, institutionID int64, studentID string) (*models.ThesisDefence, error) {
	sql, args, err := r.sb.Select(
		"institution_id", "student_id", "due_date", "date_of_defence",
		"seq", "course_id", "degree", "grade").
		From("thesis_defences").
		Where(squirrel.Eq{"institution_id": institutionID, "student_id": studentID}).
		Where("grade IS NOT NULL").
		OrderBy("due_date DESC", "date_of_defence DESC", "seq DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest graded defence query: %w", err)
	}

	defence, err := scanDefence(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrDefenceNotFound,
				fmt.Sprintf("student with studentID %s has not defended any theses", studentID))
		}
		return nil, fmt.Errorf("error getting latest graded defence: %w", err)
	}

	return defence, nil
}

// GradedOnDate returns every graded defence that took place on the given
// date, across all institutions and students.
func (r *ThesisDefenceRepository) GradedOnDate(ctx context.Context, dateOfDefence string) ([]*models.ThesisDefence, error) {
	sql, args, err := r.sb.Select(
		"institution_id", "student_id", "due_date", "date_of_defence",
		"seq", "course_id", "degree", "grade").
		From("thesis_defences").
		Where(squirrel.Eq{"date_of_defence": dateOfDefence}).
		Where("grade IS NOT NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build graded defences query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying graded defences: %w", err)
	}
	defer rows.Close()

	var defences []*models.ThesisDefence
	for rows.Next() {
		defence, err := scanDefence(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning defence row: %w", err)
		}
		defences = append(defences, defence)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defences, nil
}
