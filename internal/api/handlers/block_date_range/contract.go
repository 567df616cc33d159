package block_date_range

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

type BlockDateRangeUseCase interface {
	Execute(ctx context.Context, req *models.BlockRangeRequest) (*models.RangeResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
