package block_date_range

import (
	"context"

	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

// CalendarService операции календаря доступности
type CalendarService interface {
	BlockRange(ctx context.Context, req *models.BlockRangeRequest) (*models.RangeResult, error)
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
