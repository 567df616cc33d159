package get_blocked_dates

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

type CalendarService interface {
	ListBlocked(ctx context.Context) ([]*domain.BlockedDate, error)
	ListBlockedBetween(ctx context.Context, from, to types.Date) ([]*domain.BlockedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
