package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные блокировки"
	msgAlreadyBlocked     = "дата уже заблокирована"
)

type Handler struct {
	useCase BlockDateUseCase
	logger  Logger
}

func NewHandler(useCase BlockDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-dates - Date already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - Date blocked successfully: id=%s, date=%s",
		result.BlockedDate.ID, result.BlockedDate.Date)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBlockedDate(result.BlockedDate))
}
