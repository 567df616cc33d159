package check_blocked_date

import (
	"context"

	"github.com/m04kA/SMC-AdminService/pkg/types"
)

type CalendarService interface {
	IsBlocked(ctx context.Context, date types.Date) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
