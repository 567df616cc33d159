package get_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
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

// Handle GET /api/v1/blocked-dates
// Query params: from, to (опционально, YYYY-MM-DD)
// Публичный endpoint - используется при бронировании для отключения дат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	from, to, err := parseWindow(fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /blocked-dates - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	var list []*domain.BlockedDate
	if from.IsZero() && to.IsZero() {
		list, err = h.service.ListBlocked(r.Context())
	} else {
		list, err = h.service.ListBlockedBetween(r.Context(), from, to)
	}
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			h.logger.Warn("GET /blocked-dates - Invalid window: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /blocked-dates - Failed to list blocked dates: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates - Blocked dates retrieved successfully: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, BlockedDatesResponse{
		BlockedDates: models.FromDomainBlockedDates(list),
		Total:        len(list),
	})
}
