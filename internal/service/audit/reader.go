package audit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

// Reader чтение журнала аудита для консоли администратора
type Reader struct {
	repo   AuditRepository
	logger Logger
	now    func() time.Time
}

// NewReader создает новый экземпляр читателя журнала
func NewReader(repo AuditRepository, logger Logger) *Reader {
	return &Reader{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List возвращает страницу журнала, новые записи первыми
func (r *Reader) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	// 1. Валидируем параметры
	if req == nil {
		req = &models.ListRequest{}
	}
	if req.Days < 0 || req.Page < 0 || req.PageSize < 0 {
		r.logger.Warn("List: negative paging or days: days=%d page=%d pageSize=%d", req.Days, req.Page, req.PageSize)
		return nil, fmt.Errorf("%w: days, page and pageSize must not be negative", ErrInvalidInput)
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = domain.DefaultAuditPageSize
	}
	if pageSize > domain.MaxAuditPageSize {
		r.logger.Warn("List: pageSize=%d exceeds max=%d", pageSize, domain.MaxAuditPageSize)
		return nil, fmt.Errorf("%w: pageSize must be at most %d", ErrInvalidInput, domain.MaxAuditPageSize)
	}
	if page > math.MaxInt/pageSize {
		r.logger.Warn("List: page=%d is out of range for pageSize=%d", page, pageSize)
		return nil, fmt.Errorf("%w: page is out of range", ErrInvalidInput)
	}

	// 2. Строим фильтр
	filter := domain.AuditFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if entityType := strings.TrimSpace(req.EntityType); entityType != "" {
		filter.EntityType = &entityType
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Search = &search
	}
	if req.Days > 0 {
		since := r.now().AddDate(0, 0, -req.Days)
		filter.Since = &since
	}

	// 3. Читаем журнал
	records, total, err := r.repo.List(ctx, filter)
	if err != nil {
		r.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ListResponse{
		Records:  make([]models.RecordResponse, len(records)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i, record := range records {
		resp.Records[i] = models.FromDomainRecord(record)
	}

	r.logger.Info("List: fetched %d of %d audit records (page=%d)", len(records), total, page)
	return resp, nil
}
