package update_booking_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/settings"
	"github.com/m04kA/SMC-AdminService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "настройки не найдены"
	msgInvalidData        = "некорректные данные настроек"
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

// Handle PUT /api/v1/admin/settings/{scope}
// Частичное обновление: изменяются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := mux.Vars(r)["scope"]

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/{scope} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), scope, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PUT /admin/settings/{scope} - Settings not found: scope=%s", scope)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/{scope} - Invalid data: scope=%s, error=%v", scope, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/settings/{scope} - Failed to update settings: scope=%s, error=%v", scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/{scope} - Settings updated successfully: scope=%s, id=%d", scope, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
