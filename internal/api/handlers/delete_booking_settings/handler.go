package delete_booking_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/settings"
)

const (
	msgNotFound     = "настройки не найдены"
	msgInvalidScope = "некорректный scope или удаление глобальных настроек"
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

// Handle DELETE /api/v1/admin/settings/{scope}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := mux.Vars(r)["scope"]

	if err := h.service.Delete(r.Context(), scope); err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("DELETE /admin/settings/{scope} - Settings not found: scope=%s", scope)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/settings/{scope} - Invalid scope=%q: %v", scope, err)
			handlers.RespondBadRequest(w, msgInvalidScope)

		default:
			h.logger.Error("DELETE /admin/settings/{scope} - Failed to delete settings: scope=%s, error=%v", scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/settings/{scope} - Settings deleted successfully: scope=%s", scope)
	w.WriteHeader(http.StatusNoContent)
}
