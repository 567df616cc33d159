package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/settings"
)

// SettingsStore хранилище настроек бронирования в памяти, ключ - scope
type SettingsStore struct {
	mu      sync.RWMutex
	byScope map[string]*domain.BookingSettings
	nextID  int64
	now     func() time.Time
}

// NewSettingsStore создает пустое хранилище
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		byScope: make(map[string]*domain.BookingSettings),
		now:     time.Now,
	}
}

// Create сохраняет настройки нового scope
func (s *SettingsStore) Create(_ context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byScope[settings.Scope]; exists {
		return nil, settingsRepo.ErrDuplicateScope
	}

	s.nextID++
	now := s.now()
	settings.ID = s.nextID
	settings.CreatedAt = now
	settings.UpdatedAt = now

	stored := *settings
	s.byScope[settings.Scope] = &stored
	return settings, nil
}

// GetByScope получает настройки по scope
func (s *SettingsStore) GetByScope(_ context.Context, scope string) (*domain.BookingSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.byScope[scope]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	c := *settings
	return &c, nil
}

// GetByScopeForUpdate совпадает с GetByScope: блокировки строк в памяти не нужны
func (s *SettingsStore) GetByScopeForUpdate(ctx context.Context, scope string) (*domain.BookingSettings, error) {
	return s.GetByScope(ctx, scope)
}

// List возвращает все настройки, глобальная запись первой
func (s *SettingsStore) List(_ context.Context) ([]*domain.BookingSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BookingSettings, 0, len(s.byScope))
	for _, settings := range s.byScope {
		c := *settings
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].IsGlobal() != result[j].IsGlobal() {
			return result[i].IsGlobal()
		}
		return result[i].Scope < result[j].Scope
	})

	return result, nil
}

// Update заменяет настраиваемые поля scope
func (s *SettingsStore) Update(_ context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byScope[settings.Scope]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}

	stored.SlotDurationMinutes = settings.SlotDurationMinutes
	stored.MaxConcurrentBookings = settings.MaxConcurrentBookings
	stored.AdvanceBookingDays = settings.AdvanceBookingDays
	stored.MinBookingNoticeMinutes = settings.MinBookingNoticeMinutes
	stored.UpdatedAt = s.now()

	settings.ID = stored.ID
	settings.CreatedAt = stored.CreatedAt
	settings.UpdatedAt = stored.UpdatedAt
	return settings, nil
}

// Delete удаляет настройки scope
func (s *SettingsStore) Delete(_ context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byScope[scope]; !ok {
		return settingsRepo.ErrSettingsNotFound
	}
	delete(s.byScope, scope)
	return nil
}
