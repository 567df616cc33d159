package unblock_date

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
)

type UnblockDateUseCase interface {
	Execute(ctx context.Context, id string) (*domain.BlockedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
