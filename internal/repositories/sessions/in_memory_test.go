package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
	"github.com/KirkDiggler/aegis-tracker/internal/testutils"
)

func TestInMemoryRepository_Sheet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.GetSheet(ctx, "aegis")
	assert.True(t, apperr.IsNotFound(err))

	original := testutils.CreateTestSheet(testutils.WithHitPoints(10))
	require.NoError(t, repo.SaveSheet(ctx, "aegis", original))

	// Mutating the caller's copy must not reach the store
	original.Combat.HP.Current = 1

	stored, err := repo.GetSheet(ctx, "aegis")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Combat.HP.Current)

	stored.Inventory["arrows"] = 0
	again, err := repo.GetSheet(ctx, "aegis")
	require.NoError(t, err)
	assert.Equal(t, 67, again.Inventory["arrows"])
}

func TestInMemoryRepository_SaveSheetRejectsBadInput(t *testing.T) {
	repo := NewInMemoryRepository()

	assert.True(t, apperr.IsInvalidArgument(repo.SaveSheet(context.Background(), "aegis", nil)))
	assert.True(t, apperr.IsInvalidArgument(repo.SaveSheet(context.Background(), "", testutils.CreateTestSheet())))
}

func TestInMemoryRepository_Entries(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	entries, err := repo.ListEntries(ctx, "aegis")
	require.NoError(t, err)
	assert.Empty(t, entries)

	first := testutils.CreateTestEntry("e-1", narrative.RoleAssistant, narrative.WelcomeText)
	second := testutils.CreateTestEntry("e-2", narrative.RoleUser, "I drink a potion")
	require.NoError(t, repo.AppendEntry(ctx, "aegis", first))
	require.NoError(t, repo.AppendEntry(ctx, "aegis", second))
	require.NoError(t, repo.AppendEntry(ctx, "other", second))

	entries, err = repo.ListEntries(ctx, "aegis")
	require.NoError(t, err)
	assert.Equal(t, []narrative.Entry{first, second}, entries)

	err = repo.AppendEntry(ctx, "aegis", narrative.Entry{Role: narrative.RoleUser})
	assert.True(t, apperr.IsInvalidArgument(err))
}
