package block_date

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// CalendarService операции календаря доступности
type CalendarService interface {
	BlockDate(ctx context.Context, date types.Date, reason *string) (*domain.BlockedDate, error)
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
