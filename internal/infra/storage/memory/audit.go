package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminService/internal/domain"
)

// AuditStore журнал аудита в памяти (только добавление)
type AuditStore struct {
	mu      sync.RWMutex
	records []*domain.AuditRecord
	now     func() time.Time
}

// NewAuditStore создает пустой журнал
func NewAuditStore() *AuditStore {
	return &AuditStore{now: time.Now}
}

// Append добавляет запись в журнал
func (s *AuditStore) Append(_ context.Context, record *domain.AuditRecord) (*domain.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = s.now()

	s.records = append(s.records, copyAuditRecord(record))
	return record, nil
}

// List возвращает страницу журнала (новые первыми) и общее количество записей по фильтру
func (s *AuditStore) List(_ context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Записи добавляются в хронологическом порядке, обходим с конца
	matched := make([]*domain.AuditRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		if matchesFilter(s.records[i], filter) {
			matched = append(matched, s.records[i])
		}
	}

	total := len(matched)

	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && filter.Limit < end-start {
		end = start + filter.Limit
	}

	page := make([]*domain.AuditRecord, 0, end-start)
	for _, record := range matched[start:end] {
		page = append(page, copyAuditRecord(record))
	}

	return page, total, nil
}

// Len возвращает количество записей в журнале
func (s *AuditStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matchesFilter(record *domain.AuditRecord, filter domain.AuditFilter) bool {
	if filter.EntityType != nil && *filter.EntityType != "" {
		if record.TableName != *filter.EntityType && record.EntityType != *filter.EntityType {
			return false
		}
	}

	if filter.Search != nil && *filter.Search != "" {
		needle := strings.ToLower(*filter.Search)
		if !strings.Contains(strings.ToLower(record.ActorID), needle) &&
			!strings.Contains(strings.ToLower(record.Action), needle) {
			return false
		}
	}

	if filter.Since != nil && record.CreatedAt.Before(*filter.Since) {
		return false
	}

	return true
}

func copyAuditRecord(r *domain.AuditRecord) *domain.AuditRecord {
	c := *r
	if r.EntityID != nil {
		id := *r.EntityID
		c.EntityID = &id
	}
	c.OldValues = r.OldValues.Clone()
	c.NewValues = r.NewValues.Clone()
	return &c
}
