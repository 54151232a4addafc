package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

// InstitutionReader is the slice of the reference store the resolver needs.
type InstitutionReader interface {
	GetByID(ctx context.Context, institutionID int64) (*models.Institution, error)
}

// InstitutionResolver turns a leaf institution into the composite label
// printed on a diploma by walking the parent chain up to the root.
type InstitutionResolver struct {
	institutions InstitutionReader
}

// NewInstitutionResolver creates a new InstitutionResolver
func NewInstitutionResolver(institutions InstitutionReader) *InstitutionResolver {
	return &InstitutionResolver{institutions: institutions}
}

// ResolvedChain is the outcome of a chain walk.
type ResolvedChain struct {
	// Label joins every institution name with ", ", leaf first, root last.
	Label string
	// RootID is the institution reached at the end of the chain.
	RootID int64
}

// Resolve walks the parent chain starting at leafID. The reference graph
// carries no acyclicity guarantee, so every visited id is tracked; a revisit
// fails with a cycle error instead of looping forever.
func (r *InstitutionResolver) Resolve(ctx context.Context, leafID int64) (*ResolvedChain, error) {
	visited := make(map[int64]bool)
	names := make([]string, 0, 4)

	id := leafID
	for {
		if visited[id] {
			return nil, apperrors.NewCustomError(apperrors.ErrCycleDetected,
				fmt.Sprintf("institution chain starting at %d revisits institution %d", leafID, id))
		}
		visited[id] = true

		institution, err := r.institutions.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		names = append(names, institution.Name)
		if institution.ParentID == nil {
			return &ResolvedChain{
				Label:  strings.Join(names, ", "),
				RootID: institution.ID,
			}, nil
		}
		id = *institution.ParentID
	}
}
