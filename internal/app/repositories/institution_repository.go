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

// InstitutionRepository handles read-only access to the institutions
// reference table
type InstitutionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves an institution by ID. ParentID stays nil for a root
// institution.
func (r *InstitutionRepository) GetByID(ctx context.Context, institutionID int64) (*models.Institution, error) {
	sql, args, err := r.sb.Select("institution_id", "institution_name", "parent_institution_id").
		From("institutions").
		Where(squirrel.Eq{"institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get institution query: %w", err)
	}

	institution := &models.Institution{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&institution.ID,
		&institution.Name,
		&institution.ParentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrInstitutionNotFound,
				fmt.Sprintf("institution with institutionID %d does not exist", institutionID))
		}
		return nil, fmt.Errorf("error getting institution by ID: %w", err)
	}

	return institution, nil
}
