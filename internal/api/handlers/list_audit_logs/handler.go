package list_audit_logs

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/audit"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	reader AuditReader
	logger Logger
}

func NewHandler(reader AuditReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/audit-logs
// Query params: entityType, search, days, page, pageSize (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/audit-logs - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.reader.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, audit.ErrInvalidInput) {
			h.logger.Warn("GET /admin/audit-logs - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/audit-logs - Failed to list audit logs: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/audit-logs - Audit logs retrieved successfully: count=%d, total=%d",
		len(result.Records), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
