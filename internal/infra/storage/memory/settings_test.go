package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/settings"
)

func TestSettingsStore_Lifecycle(t *testing.T) {
	store := NewSettingsStore()
	ctx := context.Background()

	_, err := store.Create(ctx, &domain.BookingSettings{Scope: "chauffeur", SlotDurationMinutes: 60, MaxConcurrentBookings: 2})
	require.NoError(t, err)
	_, err = store.Create(ctx, &domain.BookingSettings{Scope: domain.GlobalSettingsScope, SlotDurationMinutes: 30, MaxConcurrentBookings: 1})
	require.NoError(t, err)

	_, err = store.Create(ctx, &domain.BookingSettings{Scope: "chauffeur"})
	assert.ErrorIs(t, err, settingsRepo.ErrDuplicateScope)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsGlobal())

	updated, err := store.Update(ctx, &domain.BookingSettings{Scope: "chauffeur", SlotDurationMinutes: 90, MaxConcurrentBookings: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)

	fetched, err := store.GetByScopeForUpdate(ctx, "chauffeur")
	require.NoError(t, err)
	assert.Equal(t, 90, fetched.SlotDurationMinutes)

	require.NoError(t, store.Delete(ctx, "chauffeur"))
	_, err = store.GetByScope(ctx, "chauffeur")
	assert.ErrorIs(t, err, settingsRepo.ErrSettingsNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "chauffeur"), settingsRepo.ErrSettingsNotFound)

	_, err = store.Update(ctx, &domain.BookingSettings{Scope: "missing"})
	assert.ErrorIs(t, err, settingsRepo.ErrSettingsNotFound)
}
