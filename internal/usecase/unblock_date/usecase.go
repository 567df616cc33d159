package unblock_date

import (
	"context"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

// UseCase снимает блокировку дня и фиксирует удаление в журнале аудита
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

// Execute удаляет заблокированный день по id и возвращает удаленную запись
func (uc *UseCase) Execute(ctx context.Context, id string) (*domain.BlockedDate, error) {
	uc.logger.Info("UnblockDate: id=%s", id)

	removed, err := uc.calendar.UnblockDate(ctx, id)
	if err != nil {
		return nil, err
	}

	res := uc.auditor.RecordChange(ctx, auditModels.Change{
		Action:     domain.AuditActionDelete,
		EntityType: domain.EntityTypeBlockedDate,
		EntityID:   &removed.ID,
		Summary:    "Unblocked date " + removed.Date.String(),
		Before:     removed.Snapshot(),
	})
	if !res.Recorded() {
		uc.logger.Warn("UnblockDate: audit not recorded for id=%s", removed.ID)
	}

	return removed, nil
}
