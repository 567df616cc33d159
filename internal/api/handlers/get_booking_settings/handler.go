package get_booking_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/settings"
)

const (
	msgInvalidScope = "некорректный scope настроек"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-settings/{scope}
// Публичный endpoint - без авторизации.
// Если для scope нет настроек, возвращает глобальные или значения по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := mux.Vars(r)["scope"]

	result, err := h.service.GetEffective(r.Context(), scope)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("GET /booking-settings/{scope} - Invalid scope=%q: %v", scope, err)
			handlers.RespondBadRequest(w, msgInvalidScope)
			return
		}

		h.logger.Error("GET /booking-settings/{scope} - Failed to get settings: scope=%s, error=%v", scope, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-settings/{scope} - Settings retrieved successfully: scope=%s, resolved=%s",
		scope, result.Scope)
	handlers.RespondJSON(w, http.StatusOK, result)
}
