package settings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/settings"
	auditModels "github.com/m04kA/SMC-AdminService/internal/service/audit/models"
	"github.com/m04kA/SMC-AdminService/internal/service/settings/models"
	"github.com/m04kA/SMC-AdminService/pkg/changeset"
)

var scopePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Service сервис настроек бронирования.
// Каждая успешная мутация записывается в журнал аудита.
type Service struct {
	repo    SettingsRepository
	txMgr   TransactionManager
	auditor Auditor
	logger  Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	repo SettingsRepository,
	txMgr TransactionManager,
	auditor Auditor,
	logger Logger,
) *Service {
	return &Service{
		repo:    repo,
		txMgr:   txMgr,
		auditor: auditor,
		logger:  logger,
	}
}

// Get получает настройки по scope
// Публичный метод - используется при бронировании
func (s *Service) Get(ctx context.Context, scope string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings scope=%s", scope)

	scope, err := normalizeScope(scope)
	if err != nil {
		s.logger.Warn("Get: invalid scope: %v", err)
		return nil, err
	}

	settings, err := s.repo.GetByScope(ctx, scope)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings scope=%s not found", scope)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error for scope=%s: %v", scope, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched settings scope=%s id=%d", scope, settings.ID)
	return models.FromDomainSettings(settings), nil
}

// GetEffective получает действующие настройки для scope с иерархическим поиском:
// 1. Настройки scope
// 2. Глобальные настройки
// 3. Значения по умолчанию (ID = 0)
func (s *Service) GetEffective(ctx context.Context, scope string) (*models.SettingsResponse, error) {
	scope, err := normalizeScope(scope)
	if err != nil {
		s.logger.Warn("GetEffective: invalid scope: %v", err)
		return nil, err
	}

	for _, candidate := range []string{scope, domain.GlobalSettingsScope} {
		settings, err := s.repo.GetByScope(ctx, candidate)
		if err == nil {
			s.logger.Info("GetEffective: resolved scope=%s via %s", scope, candidate)
			return models.FromDomainSettings(settings), nil
		}
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetEffective: repository error for scope=%s: %v", candidate, err)
			return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
		}
		if candidate == domain.GlobalSettingsScope {
			break
		}
	}

	s.logger.Info("GetEffective: no settings for scope=%s, returning defaults", scope)
	return models.DefaultSettingsResponse(scope), nil
}

// List получает все настройки, глобальные первыми
func (s *Service) List(ctx context.Context) (*models.SettingsListResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d settings", len(list))
	return models.FromDomainSettingsList(list), nil
}

// Create создает настройки для нового scope
func (s *Service) Create(ctx context.Context, req *models.CreateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Create: creating settings scope=%s", req.Scope)

	// 1. Валидируем входные данные
	scope, err := normalizeScope(req.Scope)
	if err != nil {
		s.logger.Warn("Create: invalid scope: %v", err)
		return nil, err
	}

	settings := req.ToDomainSettings()
	settings.Scope = scope

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Create: validation failed for scope=%s: %v", scope, err)
		return nil, err
	}

	// 2. Создаем запись (уникальность scope гарантирует хранилище)
	created, err := s.repo.Create(ctx, settings)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrDuplicateScope) {
			s.logger.Warn("Create: settings scope=%s already exist", scope)
			return nil, ErrSettingsAlreadyExist
		}
		s.logger.Error("Create: repository error for scope=%s: %v", scope, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// 3. Журнал аудита (ошибка записи не влияет на результат)
	s.auditor.RecordChange(ctx, auditModels.Change{
		Action:     domain.AuditActionCreate,
		EntityType: domain.EntityTypeBookingSettings,
		EntityID:   &created.Scope,
		Summary:    "Created " + domain.EntityTypeBookingSettings + " " + created.Scope,
		After:      created.Snapshot(),
	})

	s.logger.Info("Create: successfully created settings scope=%s id=%d", scope, created.ID)
	return models.FromDomainSettings(created), nil
}

// Update частично обновляет настройки scope
// Чтение и запись выполняются в одной транзакции, запись аудита - после фиксации
func (s *Service) Update(ctx context.Context, scope string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings scope=%s", scope)

	scope, err := normalizeScope(scope)
	if err != nil {
		s.logger.Warn("Update: invalid scope: %v", err)
		return nil, err
	}
	if req == nil || req.IsEmpty() {
		s.logger.Warn("Update: empty update for scope=%s", scope)
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	var before, updated *domain.BookingSettings

	err = s.txMgr.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем текущие настройки с блокировкой строки
		current, err := s.repo.GetByScopeForUpdate(ctx, scope)
		if err != nil {
			return err
		}
		snapshot := *current
		before = &snapshot

		// 2. Применяем и валидируем изменения
		req.ApplyToSettings(current)
		if err := validateSettings(current); err != nil {
			return err
		}

		// 3. Сохраняем
		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, settingsRepo.ErrSettingsNotFound):
			s.logger.Warn("Update: settings scope=%s not found", scope)
			return nil, ErrSettingsNotFound
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("Update: validation failed for scope=%s: %v", scope, err)
			return nil, err
		default:
			s.logger.Error("Update: repository error for scope=%s: %v", scope, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// 4. Журнал аудита
	diff := changeset.Diff(before.Snapshot(), updated.Snapshot())
	s.auditor.RecordChange(ctx, auditModels.Change{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.EntityTypeBookingSettings,
		EntityID:   &updated.Scope,
		Summary:    changeset.Summary(domain.EntityTypeBookingSettings, diff.Fields()),
		Before:     before.Snapshot(),
		After:      updated.Snapshot(),
	})

	s.logger.Info("Update: successfully updated settings scope=%s (changed=%d)", scope, len(diff.Fields()))
	return models.FromDomainSettings(updated), nil
}

// Delete удаляет настройки scope. Глобальные настройки удалить нельзя.
func (s *Service) Delete(ctx context.Context, scope string) error {
	s.logger.Info("Delete: deleting settings scope=%s", scope)

	scope, err := normalizeScope(scope)
	if err != nil {
		s.logger.Warn("Delete: invalid scope: %v", err)
		return err
	}
	if scope == domain.GlobalSettingsScope {
		s.logger.Warn("Delete: refusing to delete global settings")
		return fmt.Errorf("%w: global settings cannot be deleted", ErrInvalidInput)
	}

	var removed *domain.BookingSettings

	err = s.txMgr.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByScopeForUpdate(ctx, scope)
		if err != nil {
			return err
		}
		removed = current
		return s.repo.Delete(ctx, scope)
	})
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Delete: settings scope=%s not found", scope)
			return ErrSettingsNotFound
		}
		s.logger.Error("Delete: repository error for scope=%s: %v", scope, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.auditor.RecordChange(ctx, auditModels.Change{
		Action:     domain.AuditActionDelete,
		EntityType: domain.EntityTypeBookingSettings,
		EntityID:   &scope,
		Summary:    "Deleted " + domain.EntityTypeBookingSettings + " " + scope,
		Before:     removed.Snapshot(),
	})

	s.logger.Info("Delete: successfully deleted settings scope=%s", scope)
	return nil
}

// Вспомогательные методы

func normalizeScope(scope string) (string, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		return "", fmt.Errorf("%w: scope is required", ErrInvalidInput)
	}
	if len(scope) > domain.MaxScopeLength || !scopePattern.MatchString(scope) {
		return "", fmt.Errorf("%w: scope must match %s and be at most %d characters",
			ErrInvalidInput, scopePattern.String(), domain.MaxScopeLength)
	}
	return scope, nil
}

// validateSettings валидирует параметры настроек
func validateSettings(s *domain.BookingSettings) error {
	if s.SlotDurationMinutes < domain.MinSlotDurationMinutes || s.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if s.MaxConcurrentBookings < domain.MinConcurrentBookings || s.MaxConcurrentBookings > domain.MaxConcurrentBookings {
		return fmt.Errorf("%w: maxConcurrentBookings must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentBookings, domain.MaxConcurrentBookings)
	}

	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if s.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || s.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return nil
}
