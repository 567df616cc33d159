package block_date

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AdminService/internal/service/audit"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/pkg/actor"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/metrics"
	"github.com/m04kA/SMC-AdminService/pkg/ptr"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

func newUseCase(t *testing.T) (*UseCase, *memory.CalendarStore, *memory.AuditStore) {
	t.Helper()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	calendarStore := memory.NewCalendarStore()
	auditStore := memory.NewAuditStore()

	uc := NewUseCase(
		calendar.NewService(calendarStore, m, logger.Nop()),
		audit.NewRecorder(auditStore, actor.ContextProvider{}, m, logger.Nop()),
		logger.Nop(),
	)
	return uc, calendarStore, auditStore
}

func TestExecute_BlocksAndAudits(t *testing.T) {
	uc, _, auditStore := newUseCase(t)
	ctx := actor.WithID(context.Background(), "admin-1")

	resp, err := uc.Execute(ctx, &Request{Date: types.MustParseDate("2025-12-25"), Reason: ptr.Ptr("Christmas")})
	require.NoError(t, err)
	assert.Equal(t, auditModels.StatusRecorded, resp.Audit)

	records, _, err := auditStore.List(context.Background(), domain.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AuditActionCreate, records[0].Action)
	assert.Equal(t, "blocked_date", records[0].TableName)
	assert.Equal(t, resp.BlockedDate.ID, *records[0].EntityID)
	reason, _ := records[0].NewValues.Lookup("reason").AsString()
	assert.Equal(t, "Christmas", reason)
}

func TestExecute_DuplicateIsNotAudited(t *testing.T) {
	uc, _, auditStore := newUseCase(t)
	ctx := actor.WithID(context.Background(), "admin-1")
	date := types.MustParseDate("2025-01-01")

	_, err := uc.Execute(ctx, &Request{Date: date})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{Date: date})
	assert.ErrorIs(t, err, calendar.ErrDateAlreadyBlocked)
	assert.Equal(t, 1, auditStore.Len())
}

func TestExecute_AuditFailureKeepsBlock(t *testing.T) {
	uc, calendarStore, auditStore := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{Date: types.MustParseDate("2025-03-08")})
	require.NoError(t, err)
	assert.Equal(t, auditModels.StatusFailed, resp.Audit)
	assert.Equal(t, 0, auditStore.Len())

	exists, err := calendarStore.ExistsByDate(context.Background(), types.MustParseDate("2025-03-08"))
	require.NoError(t, err)
	assert.True(t, exists)
}
