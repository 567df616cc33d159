package block_date

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

// UseCase блокирует день и фиксирует изменение в журнале аудита
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

// Execute блокирует день. Ошибки календаря возвращаются как есть,
// ошибка аудита отражается только в Response.Audit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockDate: date=%s", req.Date)

	// 1. Блокируем день
	blocked, err := uc.calendar.BlockDate(ctx, req.Date, req.Reason)
	if err != nil {
		return nil, err
	}

	// 2. Журнал аудита после успешной мутации
	result := uc.auditor.RecordChange(ctx, auditModels.Change{
		Action:     domain.AuditActionCreate,
		EntityType: domain.EntityTypeBlockedDate,
		EntityID:   &blocked.ID,
		Summary:    "Blocked date " + blocked.Date.String(),
		After:      blocked.Snapshot(),
	})
	if !result.Recorded() {
		uc.logger.Warn("BlockDate: audit not recorded for id=%s", blocked.ID)
	}

	return &Response{BlockedDate: blocked, Audit: result.Status}, nil
}
