package block_date_range

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
)

// UseCase блокирует диапазон дней и фиксирует каждый созданный день в журнале аудита
type UseCase struct {
	calendar CalendarService
	auditor  Auditor
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarService, auditor Auditor, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		auditor:  auditor,
		logger:   logger,
	}
}

// Execute блокирует диапазон. При частичной ошибке возвращает и результат, и ошибку:
// уже созданные дни остаются заблокированными и попадают в журнал.
func (uc *UseCase) Execute(ctx context.Context, req *models.BlockRangeRequest) (*models.RangeResult, error) {
	// 1. Блокируем диапазон
	result, err := uc.calendar.BlockRange(ctx, req)
	if result == nil {
		return nil, err
	}
	uc.logger.Info("BlockDateRange: start=%s, end=%s, inserted=%d", result.Start, result.End, len(result.Inserted))

	// 2. Одна запись аудита на каждый созданный день
	failed := 0
	for _, blocked := range result.Inserted {
		res := uc.auditor.RecordChange(ctx, auditModels.Change{
			Action:     domain.AuditActionCreate,
			EntityType: domain.EntityTypeBlockedDate,
			EntityID:   &blocked.ID,
			Summary:    "Blocked date " + blocked.Date.String(),
			After:      blocked.Snapshot(),
		})
		if !res.Recorded() {
			failed++
		}
	}
	if failed > 0 {
		uc.logger.Warn("BlockDateRange: %d of %d audit records not written", failed, len(result.Inserted))
	}

	return result, err
}
