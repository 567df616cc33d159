package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar/models"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// Операции и исходы для метрики calendar_operations_total
const (
	opBlock       = "block"
	opBlockRange  = "block_range"
	opUnblock     = "unblock"
	opIsBlocked   = "is_blocked"
	opList        = "list"
	opListBetween = "list_between"

	outcomeOK       = "ok"
	outcomeNoOp     = "noop"
	outcomeInvalid  = "invalid"
	outcomeConflict = "conflict"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Service календарь доступности: блокировка и разблокировка дней
type Service struct {
	repo    CalendarRepository
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(repo CalendarRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// BlockDate блокирует один день.
// Если день уже заблокирован, возвращает ErrDateAlreadyBlocked без попытки вставки.
func (s *Service) BlockDate(ctx context.Context, date types.Date, reason *string) (*domain.BlockedDate, error) {
	s.logger.Info("BlockDate: blocking date=%s", date)

	// 1. Валидируем входные данные
	if date.IsZero() {
		s.logger.Warn("BlockDate: date is required")
		s.metrics.IncCalendarOperation(opBlock, outcomeInvalid)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	normalizedReason, err := normalizeReason(reason)
	if err != nil {
		s.logger.Warn("BlockDate: invalid reason for date=%s: %v", date, err)
		s.metrics.IncCalendarOperation(opBlock, outcomeInvalid)
		return nil, err
	}

	// 2. Проверяем, не заблокирован ли день
	exists, err := s.repo.ExistsByDate(ctx, date)
	if err != nil {
		s.logger.Error("BlockDate: failed to check date=%s: %v", date, err)
		s.metrics.IncCalendarOperation(opBlock, outcomeError)
		return nil, fmt.Errorf("%w: BlockDate - check existing: %v", ErrPersistence, err)
	}
	if exists {
		s.logger.Warn("BlockDate: date=%s is already blocked", date)
		s.metrics.IncCalendarOperation(opBlock, outcomeConflict)
		return nil, ErrDateAlreadyBlocked
	}

	// 3. Создаем запись (уникальность по дате гарантирует хранилище)
	created, err := s.repo.Create(ctx, &domain.BlockedDate{
		ID:     uuid.NewString(),
		Date:   date,
		Reason: normalizedReason,
	})
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDuplicateDate) {
			s.logger.Warn("BlockDate: date=%s was blocked concurrently", date)
			s.metrics.IncCalendarOperation(opBlock, outcomeConflict)
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("BlockDate: repository error for date=%s: %v", date, err)
		s.metrics.IncCalendarOperation(opBlock, outcomeError)
		return nil, fmt.Errorf("%w: BlockDate - repository error: %v", ErrPersistence, err)
	}

	s.metrics.IncCalendarOperation(opBlock, outcomeOK)
	s.logger.Info("BlockDate: successfully blocked date=%s id=%s", date, created.ID)
	return created, nil
}

// BlockRange блокирует каждый день диапазона [Start, End] включительно.
// Уже заблокированные дни пропускаются, остальные вставляются по одному с общей причиной.
// Операция не транзакционная: при ошибке хранилища возвращается частичный результат
// вместе с ошибкой ErrPersistence.
func (s *Service) BlockRange(ctx context.Context, req *models.BlockRangeRequest) (*models.RangeResult, error) {
	// 1. Валидируем входные данные
	if req == nil || req.Start.IsZero() {
		s.logger.Warn("BlockRange: start date is required")
		s.metrics.IncCalendarOperation(opBlockRange, outcomeInvalid)
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	end := req.End
	if end.IsZero() {
		end = req.Start
	}

	s.logger.Info("BlockRange: blocking range start=%s end=%s", req.Start, end)

	if span := rangeLength(req.Start, end); span > domain.MaxBlockRangeDays {
		s.logger.Warn("BlockRange: range start=%s end=%s spans %d days, max=%d", req.Start, end, span, domain.MaxBlockRangeDays)
		s.metrics.IncCalendarOperation(opBlockRange, outcomeInvalid)
		return nil, fmt.Errorf("%w: range must span at most %d days", ErrInvalidInput, domain.MaxBlockRangeDays)
	}

	reason, err := normalizeReason(req.Reason)
	if err != nil {
		s.logger.Warn("BlockRange: invalid reason: %v", err)
		s.metrics.IncCalendarOperation(opBlockRange, outcomeInvalid)
		return nil, err
	}

	// 2. Разворачиваем диапазон в список дней
	days := types.DaysInRange(req.Start, end)
	result := &models.RangeResult{
		Start:     req.Start,
		End:       end,
		Requested: len(days),
		Inserted:  make([]*domain.BlockedDate, 0, len(days)),
		Skipped:   make([]types.Date, 0),
	}

	if len(days) == 0 {
		s.logger.Warn("BlockRange: start=%s is after end=%s, nothing to block", req.Start, end)
		result.NoOp = true
		s.metrics.IncCalendarOperation(opBlockRange, outcomeNoOp)
		return result, nil
	}

	// 3. Получаем уже заблокированные дни диапазона одним запросом
	existing, err := s.repo.ListByRange(ctx, domain.BlockedDateRange{From: req.Start, To: end})
	if err != nil {
		s.logger.Error("BlockRange: failed to load existing blocks: %v", err)
		s.metrics.IncCalendarOperation(opBlockRange, outcomeError)
		return nil, fmt.Errorf("%w: BlockRange - load existing: %v", ErrPersistence, err)
	}

	blocked := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		blocked[b.Date.String()] = struct{}{}
	}

	// 4. Вставляем оставшиеся дни по одному
	for _, day := range days {
		if _, ok := blocked[day.String()]; ok {
			result.Skipped = append(result.Skipped, day)
			continue
		}

		created, err := s.repo.Create(ctx, &domain.BlockedDate{
			ID:     uuid.NewString(),
			Date:   day,
			Reason: copyReason(reason),
		})
		if err != nil {
			if errors.Is(err, calendarRepo.ErrDuplicateDate) {
				// День заблокировали параллельно между чтением и вставкой
				result.Skipped = append(result.Skipped, day)
				continue
			}
			s.logger.Error("BlockRange: failed to block date=%s after %d inserts: %v", day, len(result.Inserted), err)
			s.metrics.IncCalendarOperation(opBlockRange, outcomeError)
			result.NoOp = len(result.Inserted) == 0
			return result, fmt.Errorf("%w: BlockRange - insert %s: %v", ErrPersistence, day, err)
		}

		result.Inserted = append(result.Inserted, created)
	}

	result.NoOp = len(result.Inserted) == 0
	if result.NoOp {
		s.metrics.IncCalendarOperation(opBlockRange, outcomeNoOp)
		s.logger.Info("BlockRange: all %d days already blocked", result.Requested)
		return result, nil
	}

	s.metrics.IncCalendarOperation(opBlockRange, outcomeOK)
	s.logger.Info("BlockRange: blocked %d of %d days (skipped=%d)",
		len(result.Inserted), result.Requested, len(result.Skipped))
	return result, nil
}

// UnblockDate удаляет блокировку дня по ID и возвращает удаленную запись
func (s *Service) UnblockDate(ctx context.Context, id string) (*domain.BlockedDate, error) {
	s.logger.Info("UnblockDate: unblocking id=%s", id)

	// 1. Валидируем ID
	id = strings.TrimSpace(id)
	if id == "" {
		s.logger.Warn("UnblockDate: id is required")
		s.metrics.IncCalendarOperation(opUnblock, outcomeInvalid)
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("UnblockDate: malformed id=%s", id)
		s.metrics.IncCalendarOperation(opUnblock, outcomeInvalid)
		return nil, fmt.Errorf("%w: malformed id", ErrInvalidInput)
	}

	// 2. Получаем запись (нужна вызывающей стороне для журнала аудита)
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.unblockError(id, err)
	}

	// 3. Удаляем
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, s.unblockError(id, err)
	}

	s.metrics.IncCalendarOperation(opUnblock, outcomeOK)
	s.logger.Info("UnblockDate: successfully unblocked id=%s date=%s", id, existing.Date)
	return existing, nil
}

func (s *Service) unblockError(id string, err error) error {
	if errors.Is(err, calendarRepo.ErrBlockedDateNotFound) {
		s.logger.Warn("UnblockDate: blocked date id=%s not found", id)
		s.metrics.IncCalendarOperation(opUnblock, outcomeNotFound)
		return ErrBlockedDateNotFound
	}
	s.logger.Error("UnblockDate: repository error for id=%s: %v", id, err)
	s.metrics.IncCalendarOperation(opUnblock, outcomeError)
	return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrPersistence, err)
}

// IsBlocked сообщает, заблокирован ли день
func (s *Service) IsBlocked(ctx context.Context, date types.Date) (bool, error) {
	if date.IsZero() {
		s.metrics.IncCalendarOperation(opIsBlocked, outcomeInvalid)
		return false, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByDate(ctx, date)
	if err != nil {
		s.logger.Error("IsBlocked: repository error for date=%s: %v", date, err)
		s.metrics.IncCalendarOperation(opIsBlocked, outcomeError)
		return false, fmt.Errorf("%w: IsBlocked - repository error: %v", ErrPersistence, err)
	}

	s.metrics.IncCalendarOperation(opIsBlocked, outcomeOK)
	return exists, nil
}

// ListBlocked возвращает все заблокированные дни по возрастанию даты
func (s *Service) ListBlocked(ctx context.Context) ([]*domain.BlockedDate, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlocked: repository error: %v", err)
		s.metrics.IncCalendarOperation(opList, outcomeError)
		return nil, fmt.Errorf("%w: ListBlocked - repository error: %v", ErrPersistence, err)
	}

	s.metrics.IncCalendarOperation(opList, outcomeOK)
	s.logger.Info("ListBlocked: fetched %d blocked dates", len(list))
	return list, nil
}

// ListBlockedBetween возвращает заблокированные дни окна [from, to] по возрастанию даты.
// Нулевая граница не ограничивает выборку.
func (s *Service) ListBlockedBetween(ctx context.Context, from, to types.Date) ([]*domain.BlockedDate, error) {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		s.logger.Warn("ListBlockedBetween: from=%s is after to=%s", from, to)
		s.metrics.IncCalendarOperation(opListBetween, outcomeInvalid)
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	list, err := s.repo.ListByRange(ctx, domain.BlockedDateRange{From: from, To: to})
	if err != nil {
		s.logger.Error("ListBlockedBetween: repository error: %v", err)
		s.metrics.IncCalendarOperation(opListBetween, outcomeError)
		return nil, fmt.Errorf("%w: ListBlockedBetween - repository error: %v", ErrPersistence, err)
	}

	s.metrics.IncCalendarOperation(opListBetween, outcomeOK)
	s.logger.Info("ListBlockedBetween: fetched %d blocked dates from=%s to=%s", len(list), from, to)
	return list, nil
}

// normalizeReason обрезает пробелы; пустая причина хранится как NULL
func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}
	return &trimmed, nil
}

func copyReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	c := *reason
	return &c
}

// rangeLength количество дней в [start, end]; 0, если start позже end
func rangeLength(start, end types.Date) int {
	if start.After(end) {
		return 0
	}
	return int(end.Time().Sub(start.Time())/(24*time.Hour)) + 1
}
