package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/ptr"
)

func appendRecord(t *testing.T, store *AuditStore, actorID, action, entityType string) {
	t.Helper()
	_, err := store.Append(context.Background(), &domain.AuditRecord{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		TableName:  domain.TableNameFor(entityType),
	})
	require.NoError(t, err)
}

func TestAuditStore_ListNewestFirst(t *testing.T) {
	store := NewAuditStore()
	appendRecord(t, store, "admin-1", "create", "Blocked Date")
	appendRecord(t, store, "admin-2", "delete", "Blocked Date")
	appendRecord(t, store, "admin-1", "update", "Booking Settings")

	records, total, err := store.List(context.Background(), domain.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 3)
	assert.Equal(t, "update", records[0].Action)
	assert.Equal(t, "create", records[2].Action)
}

func TestAuditStore_ListFilters(t *testing.T) {
	store := NewAuditStore()
	appendRecord(t, store, "Admin-1", "create", "Blocked Date")
	appendRecord(t, store, "ops-2", "delete", "Blocked Date")
	appendRecord(t, store, "ops-2", "update", "Booking Settings")

	ctx := context.Background()

	byTable, total, err := store.List(ctx, domain.AuditFilter{EntityType: ptr.Ptr("blocked_date")})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, byTable, 2)

	byLabel, _, err := store.List(ctx, domain.AuditFilter{EntityType: ptr.Ptr("Booking Settings")})
	require.NoError(t, err)
	assert.Len(t, byLabel, 1)

	bySearch, _, err := store.List(ctx, domain.AuditFilter{Search: ptr.Ptr("ADMIN")})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Admin-1", bySearch[0].ActorID)

	byAction, _, err := store.List(ctx, domain.AuditFilter{Search: ptr.Ptr("upd")})
	require.NoError(t, err)
	assert.Len(t, byAction, 1)

	future := time.Now().Add(time.Hour)
	none, total, err := store.List(ctx, domain.AuditFilter{Since: &future})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, none)
}

func TestAuditStore_ListPagination(t *testing.T) {
	store := NewAuditStore()
	for i := 0; i < 5; i++ {
		appendRecord(t, store, "admin-1", "create", "Blocked Date")
	}

	page, total, err := store.List(context.Background(), domain.AuditFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 1)

	page, _, err = store.List(context.Background(), domain.AuditFilter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestAuditStore_ListNegativeOffsetStartsAtFirstRecord(t *testing.T) {
	store := NewAuditStore()
	for i := 0; i < 3; i++ {
		appendRecord(t, store, "admin-1", "create", "Blocked Date")
	}

	page, total, err := store.List(context.Background(), domain.AuditFilter{Limit: 2, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 2)
}

func TestAuditStore_ListSearchIsLiteral(t *testing.T) {
	store := NewAuditStore()
	appendRecord(t, store, "admin1", "create", "Blocked Date")
	appendRecord(t, store, "admin_1", "create", "Blocked Date")

	page, total, err := store.List(context.Background(), domain.AuditFilter{Search: ptr.Ptr("n_")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "admin_1", page[0].ActorID)
}
