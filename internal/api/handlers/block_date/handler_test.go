package block_date

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AdminService/internal/service/audit"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
	blockDate "github.com/m04kA/SMC-AdminService/internal/usecase/block_date"
	"github.com/m04kA/SMC-AdminService/pkg/actor"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/metrics"
)

func newHandler(t *testing.T) (*Handler, *memory.AuditStore) {
	t.Helper()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	auditStore := memory.NewAuditStore()
	uc := blockDate.NewUseCase(
		calendar.NewService(memory.NewCalendarStore(), m, logger.Nop()),
		audit.NewRecorder(auditStore, actor.ContextProvider{}, m, logger.Nop()),
		logger.Nop(),
	)
	return NewHandler(uc, logger.Nop()), auditStore
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blocked-dates", strings.NewReader(body))
	req = req.WithContext(actor.WithID(context.Background(), "admin-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	h, auditStore := newHandler(t)

	rec := doRequest(h, `{"date":"2025-12-25","reason":"Christmas"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.BlockedDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-12-25", resp.Date.String())
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Christmas", *resp.Reason)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, auditStore.Len())
}

func TestHandle_Conflict(t *testing.T) {
	h, _ := newHandler(t)

	require.Equal(t, http.StatusCreated, doRequest(h, `{"date":"2025-01-01"}`).Code)
	assert.Equal(t, http.StatusConflict, doRequest(h, `{"date":"2025-01-01"}`).Code)
}

func TestHandle_BadRequest(t *testing.T) {
	h, _ := newHandler(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{"date":"25-12-2025"}`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{"date":"2025-12-25","reason":"`+strings.Repeat("x", 501)+`"}`).Code)
}
