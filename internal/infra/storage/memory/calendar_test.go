package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AdminService/pkg/ptr"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

func TestCalendarStore_UniqueDate(t *testing.T) {
	store := NewCalendarStore()
	ctx := context.Background()
	day := types.MustParseDate("2025-12-25")

	created, err := store.Create(ctx, &domain.BlockedDate{Date: day, Reason: ptr.Ptr("Christmas")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = store.Create(ctx, &domain.BlockedDate{Date: day})
	assert.ErrorIs(t, err, calendarRepo.ErrDuplicateDate)

	exists, err := store.ExistsByDate(ctx, day)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCalendarStore_ConcurrentCreateSameDate(t *testing.T) {
	store := NewCalendarStore()
	day := types.MustParseDate("2025-06-01")

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Create(context.Background(), &domain.BlockedDate{Date: day}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestCalendarStore_ListByRange_SortedAndBounded(t *testing.T) {
	store := NewCalendarStore()
	ctx := context.Background()

	for _, d := range []string{"2025-03-10", "2025-03-01", "2025-04-02", "2025-03-05"} {
		_, err := store.Create(ctx, &domain.BlockedDate{Date: types.MustParseDate(d)})
		require.NoError(t, err)
	}

	list, err := store.ListByRange(ctx, domain.BlockedDateRange{
		From: types.MustParseDate("2025-03-01"),
		To:   types.MustParseDate("2025-03-31"),
	})
	require.NoError(t, err)

	got := make([]string, len(list))
	for i, b := range list {
		got[i] = b.Date.String()
	}
	assert.Equal(t, []string{"2025-03-01", "2025-03-05", "2025-03-10"}, got)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCalendarStore_Delete(t *testing.T) {
	store := NewCalendarStore()
	ctx := context.Background()
	day := types.MustParseDate("2025-01-01")

	created, err := store.Create(ctx, &domain.BlockedDate{Date: day})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.ErrorIs(t, store.Delete(ctx, created.ID), calendarRepo.ErrBlockedDateNotFound)

	_, err = store.GetByDate(ctx, day)
	assert.ErrorIs(t, err, calendarRepo.ErrBlockedDateNotFound)

	// День снова можно заблокировать
	_, err = store.Create(ctx, &domain.BlockedDate{Date: day})
	assert.NoError(t, err)
}

func TestCalendarStore_ReturnsCopies(t *testing.T) {
	store := NewCalendarStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.BlockedDate{Date: types.MustParseDate("2025-01-01"), Reason: ptr.Ptr("a")})
	require.NoError(t, err)

	fetched, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	*fetched.Reason = "changed"

	again, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", *again.Reason)
}
