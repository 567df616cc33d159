package list_booking_settings

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/service/settings/models"
)

type SettingsService interface {
	List(ctx context.Context) (*models.SettingsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
