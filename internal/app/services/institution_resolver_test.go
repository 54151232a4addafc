package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/pkg/apperrors"
)

func int64ptr(v int64) *int64 {
	return &v
}

func TestResolveChain(t *testing.T) {
	resolver := NewInstitutionResolver(&fakeInstitutions{byID: map[int64]*models.Institution{
		1: {ID: 1, Name: "A", ParentID: int64ptr(2)},
		2: {ID: 2, Name: "B", ParentID: int64ptr(3)},
		3: {ID: 3, Name: "C"},
	}})

	chain, err := resolver.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A, B, C", chain.Label)
	assert.Equal(t, int64(3), chain.RootID)
}

func TestResolveSingleInstitution(t *testing.T) {
	resolver := NewInstitutionResolver(&fakeInstitutions{byID: map[int64]*models.Institution{
		7: {ID: 7, Name: "University X"},
	}})

	chain, err := resolver.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "University X", chain.Label)
	assert.Equal(t, int64(7), chain.RootID)
}

func TestResolveMissingInstitution(t *testing.T) {
	resolver := NewInstitutionResolver(&fakeInstitutions{byID: map[int64]*models.Institution{
		1: {ID: 1, Name: "A", ParentID: int64ptr(2)},
	}})

	_, err := resolver.Resolve(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolveCycleFailsInsteadOfLooping(t *testing.T) {
	resolver := NewInstitutionResolver(&fakeInstitutions{byID: map[int64]*models.Institution{
		1: {ID: 1, Name: "A", ParentID: int64ptr(2)},
		2: {ID: 2, Name: "B", ParentID: int64ptr(1)},
	}})

	_, err := resolver.Resolve(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCycleDetected)
}

func TestResolveSelfParentCycle(t *testing.T) {
	resolver := NewInstitutionResolver(&fakeInstitutions{byID: map[int64]*models.Institution{
		1: {ID: 1, Name: "A", ParentID: int64ptr(1)},
	}})

	_, err := resolver.Resolve(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCycleDetected)
}
