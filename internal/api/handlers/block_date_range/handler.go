package block_date_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные блокировки"
)

type Handler struct {
	useCase BlockDateRangeUseCase
	logger  Logger
}

func NewHandler(useCase BlockDateRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-dates/range
// Уже заблокированные дни пропускаются; если новых дней нет - 200 с noOp=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates/range - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates/range - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates/range - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			inserted := 0
			if result != nil {
				inserted = len(result.Inserted)
			}
			h.logger.Error("POST /admin/blocked-dates/range - Failed to block range: start=%s, end=%s, inserted=%d, error=%v",
				req.StartDate, req.EndDate, inserted, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates/range - Range processed: start=%s, end=%s, inserted=%d, skipped=%d, noOp=%t",
		result.Start, result.End, len(result.Inserted), len(result.Skipped), result.NoOp)
	handlers.RespondJSON(w, http.StatusOK, result.ToResponse())
}
