package settings

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	Create(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error)
	GetByScope(ctx context.Context, scope string) (*domain.BookingSettings, error)
	GetByScopeForUpdate(ctx context.Context, scope string) (*domain.BookingSettings, error)
	List(ctx context.Context) ([]*domain.BookingSettings, error)
	Update(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error)
	Delete(ctx context.Context, scope string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Auditor записывает изменения в журнал аудита
type Auditor interface {
	RecordChange(ctx context.Context, change auditModels.Change) auditModels.Result
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
