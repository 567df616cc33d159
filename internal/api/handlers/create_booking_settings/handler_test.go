package create_booking_settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdminService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AdminService/internal/service/audit"
	"github.com/m04kA/SMC-AdminService/internal/service/settings"
	"github.com/m04kA/SMC-AdminService/pkg/actor"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/metrics"
	"github.com/m04kA/SMC-AdminService/pkg/txmanager"
)

func TestHandle(t *testing.T) {
	auditStore := memory.NewAuditStore()
	recorder := audit.NewRecorder(auditStore, actor.ContextProvider{},
		metrics.NewWithRegistry("test", prometheus.NewRegistry()), logger.Nop())
	h := NewHandler(settings.NewService(memory.NewSettingsStore(), txmanager.Noop{}, recorder, logger.Nop()), logger.Nop())

	do := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/settings", strings.NewReader(body))
		req = req.WithContext(actor.WithID(context.Background(), "admin-1"))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, do(`{"scope":"chauffeur","slotDurationMinutes":60}`))
	assert.Equal(t, http.StatusConflict, do(`{"scope":"chauffeur"}`))
	assert.Equal(t, http.StatusBadRequest, do(`{"scope":"close_protection","maxConcurrentBookings":0}`))
	assert.Equal(t, http.StatusBadRequest, do(`not json`))
	assert.Equal(t, 1, auditStore.Len())
}
