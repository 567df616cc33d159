package unblock_date

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AdminService/internal/service/audit"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/pkg/actor"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/metrics"
	"github.com/m04kA/SMC-AdminService/pkg/ptr"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

func TestExecute_UnblocksAndAudits(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	calendarSvc := calendar.NewService(memory.NewCalendarStore(), m, logger.Nop())
	auditStore := memory.NewAuditStore()
	uc := NewUseCase(calendarSvc, audit.NewRecorder(auditStore, actor.ContextProvider{}, m, logger.Nop()), logger.Nop())
	ctx := actor.WithID(context.Background(), "admin-9")

	blocked, err := calendarSvc.BlockDate(ctx, types.MustParseDate("2025-07-04"), ptr.Ptr("Holiday"))
	require.NoError(t, err)

	removed, err := uc.Execute(ctx, blocked.ID)
	require.NoError(t, err)
	assert.Equal(t, blocked.ID, removed.ID)

	isBlocked, err := calendarSvc.IsBlocked(ctx, types.MustParseDate("2025-07-04"))
	require.NoError(t, err)
	assert.False(t, isBlocked)

	records, _, err := auditStore.List(context.Background(), domain.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AuditActionDelete, records[0].Action)
	assert.Equal(t, "Unblocked date 2025-07-04", records[0].Summary)
	date, _ := records[0].OldValues.Lookup("date").AsString()
	assert.Equal(t, "2025-07-04", date)

	_, err = uc.Execute(ctx, blocked.ID)
	assert.ErrorIs(t, err, calendar.ErrBlockedDateNotFound)
	assert.Equal(t, 1, auditStore.Len())
}
