package check_blocked_date

import (
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-dates/check?date=YYYY-MM-DD
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := types.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /blocked-dates/check - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocked, err := h.service.IsBlocked(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /blocked-dates/check - Failed to check date=%s: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckBlockedDateResponse{Date: date, Blocked: blocked})
}
