package models

import (
	"time"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// BlockRangeRequest запрос на блокировку диапазона дат.
// Нулевой End означает диапазон из одного дня Start.
type BlockRangeRequest struct {
	Start  types.Date
	End    types.Date
	Reason *string
}

// RangeResult итог блокировки диапазона
type RangeResult struct {
	Start     types.Date
	End       types.Date
	Requested int                   // количество дней в диапазоне
	Inserted  []*domain.BlockedDate // созданные записи в порядке дат
	Skipped   []types.Date          // дни, заблокированные ранее
	NoOp      bool                  // ничего не создано
}

// InsertedDates возвращает даты созданных записей
func (r *RangeResult) InsertedDates() []types.Date {
	dates := make([]types.Date, len(r.Inserted))
	for i, b := range r.Inserted {
		dates[i] = b.Date
	}
	return dates
}

// Response модели

// BlockedDateResponse заблокированный день в ответе API
type BlockedDateResponse struct {
	ID        string     `json:"id"`
	Date      types.Date `json:"date"`
	Reason    *string    `json:"reason"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RangeResponse итог блокировки диапазона в ответе API
type RangeResponse struct {
	StartDate     types.Date            `json:"startDate"`
	EndDate       types.Date            `json:"endDate"`
	Requested     int                   `json:"requested"`
	InsertedCount int                   `json:"insertedCount"`
	Inserted      []BlockedDateResponse `json:"inserted"`
	Skipped       []types.Date          `json:"skipped"`
	NoOp          bool                  `json:"noOp"`
}

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedDates конвертирует список domain моделей в DTO
func FromDomainBlockedDates(list []*domain.BlockedDate) []BlockedDateResponse {
	resp := make([]BlockedDateResponse, 0, len(list))
	for _, b := range list {
		if item := FromDomainBlockedDate(b); item != nil {
			resp = append(resp, *item)
		}
	}
	return resp
}

// ToResponse конвертирует итог блокировки диапазона в DTO
func (r *RangeResult) ToResponse() *RangeResponse {
	skipped := r.Skipped
	if skipped == nil {
		skipped = []types.Date{}
	}
	return &RangeResponse{
		StartDate:     r.Start,
		EndDate:       r.End,
		Requested:     r.Requested,
		InsertedCount: len(r.Inserted),
		Inserted:      FromDomainBlockedDates(r.Inserted),
		Skipped:       skipped,
		NoOp:          r.NoOp,
	}
}
