package unblock_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

const (
	msgInvalidID = "некорректный ID блокировки"
	msgNotFound  = "заблокированная дата не найдена"
)

type Handler struct {
	useCase UnblockDateUseCase
	logger  Logger
}

func NewHandler(useCase UnblockDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-dates/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.useCase.Execute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Invalid id=%q: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, calendar.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{id} - Failed to unblock: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{id} - Date unblocked successfully: id=%s, date=%s", removed.ID, removed.Date)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBlockedDate(removed))
}
