package create_booking_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
	"github.com/m04kA/SMC-AdminService/internal/service/settings"
	"github.com/m04kA/SMC-AdminService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyExist       = "настройки для этого scope уже существуют"
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

// Handle POST /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsAlreadyExist):
			h.logger.Warn("POST /admin/settings - Settings already exist: scope=%s", req.Scope)
			handlers.RespondConflict(w, msgAlreadyExist)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /admin/settings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/settings - Failed to create settings: scope=%s, error=%v", req.Scope, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/settings - Settings created successfully: scope=%s, id=%d", result.Scope, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
