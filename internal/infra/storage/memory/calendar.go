// Package memory implements the storage contracts in process memory. It backs
// the "memory" storage driver and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// CalendarStore хранилище заблокированных дат с уникальным индексом по дате
type CalendarStore struct {
	mu     sync.RWMutex
	byID   map[string]*domain.BlockedDate
	byDate map[string]string // YYYY-MM-DD -> id
	now    func() time.Time
}

// NewCalendarStore создает пустое хранилище
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		byID:   make(map[string]*domain.BlockedDate),
		byDate: make(map[string]string),
		now:    time.Now,
	}
}

// Create сохраняет запись; повторная дата отклоняется с calendar.ErrDuplicateDate
func (s *CalendarStore) Create(_ context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byDate[blocked.Date.String()]; exists {
		return nil, calendarRepo.ErrDuplicateDate
	}

	if blocked.ID == "" {
		blocked.ID = uuid.NewString()
	}
	blocked.CreatedAt = s.now()

	stored := copyBlockedDate(blocked)
	s.byID[stored.ID] = stored
	s.byDate[stored.Date.String()] = stored.ID

	return blocked, nil
}

// GetByID получает запись по ID
func (s *CalendarStore) GetByID(_ context.Context, id string) (*domain.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocked, ok := s.byID[id]
	if !ok {
		return nil, calendarRepo.ErrBlockedDateNotFound
	}
	return copyBlockedDate(blocked), nil
}

// GetByDate получает запись для конкретного дня
func (s *CalendarStore) GetByDate(_ context.Context, date types.Date) (*domain.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byDate[date.String()]
	if !ok {
		return nil, calendarRepo.ErrBlockedDateNotFound
	}
	return copyBlockedDate(s.byID[id]), nil
}

// ExistsByDate проверяет, заблокирован ли день
func (s *CalendarStore) ExistsByDate(_ context.Context, date types.Date) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byDate[date.String()]
	return ok, nil
}

// List возвращает все записи по возрастанию даты
func (s *CalendarStore) List(ctx context.Context) ([]*domain.BlockedDate, error) {
	return s.ListByRange(ctx, domain.BlockedDateRange{})
}

// ListByRange возвращает записи внутри окна по возрастанию даты
func (s *CalendarStore) ListByRange(_ context.Context, window domain.BlockedDateRange) ([]*domain.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BlockedDate, 0, len(s.byID))
	for _, blocked := range s.byID {
		if window.Contains(blocked.Date) {
			result = append(result, copyBlockedDate(blocked))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result, nil
}

// Delete удаляет запись по ID
func (s *CalendarStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocked, ok := s.byID[id]
	if !ok {
		return calendarRepo.ErrBlockedDateNotFound
	}

	delete(s.byDate, blocked.Date.String())
	delete(s.byID, id)
	return nil
}

func copyBlockedDate(b *domain.BlockedDate) *domain.BlockedDate {
	c := *b
	if b.Reason != nil {
		reason := *b.Reason
		c.Reason = &reason
	}
	return &c
}
