package calendar

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// CalendarRepository интерфейс хранилища заблокированных дат
type CalendarRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	GetByID(ctx context.Context, id string) (*domain.BlockedDate, error)
	ExistsByDate(ctx context.Context, date types.Date) (bool, error)
	List(ctx context.Context) ([]*domain.BlockedDate, error)
	ListByRange(ctx context.Context, window domain.BlockedDateRange) ([]*domain.BlockedDate, error)
	Delete(ctx context.Context, id string) error
}

// Metrics счетчики операций календаря
type Metrics interface {
	IncCalendarOperation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
