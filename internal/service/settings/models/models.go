package models

import (
	"time"

	"github.com/m04kA/SMC-AdminService/internal/domain"
)

// Request модели

// CreateSettingsRequest запрос на создание настроек бронирования.
// Незаданные поля получают значения по умолчанию.
type CreateSettingsRequest struct {
	Scope                   string `json:"scope"`
	SlotDurationMinutes     *int   `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentBookings   *int   `json:"maxConcurrentBookings,omitempty"`
	AdvanceBookingDays      *int   `json:"advanceBookingDays,omitempty"`      // 0 = без ограничений
	MinBookingNoticeMinutes *int   `json:"minBookingNoticeMinutes,omitempty"` // Минимальное время до бронирования
}

// UpdateSettingsRequest запрос на обновление настроек бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	SlotDurationMinutes     *int `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentBookings   *int `json:"maxConcurrentBookings,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
}

// IsEmpty сообщает, что в запросе нет ни одного поля
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.SlotDurationMinutes == nil && r.MaxConcurrentBookings == nil &&
		r.AdvanceBookingDays == nil && r.MinBookingNoticeMinutes == nil
}

// Response модели

// SettingsResponse ответ с настройками бронирования
type SettingsResponse struct {
	ID                      int64     `json:"id"`
	Scope                   string    `json:"scope"`
	SlotDurationMinutes     int       `json:"slotDurationMinutes"`
	MaxConcurrentBookings   int       `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// SettingsListResponse ответ со списком настроек
type SettingsListResponse struct {
	Settings []SettingsResponse `json:"settings"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		ID:                      s.ID,
		Scope:                   s.Scope,
		SlotDurationMinutes:     s.SlotDurationMinutes,
		MaxConcurrentBookings:   s.MaxConcurrentBookings,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

// FromDomainSettingsList конвертирует список domain моделей в DTO
func FromDomainSettingsList(list []*domain.BookingSettings) *SettingsListResponse {
	resp := &SettingsListResponse{
		Settings: make([]SettingsResponse, 0, len(list)),
	}

	for _, s := range list {
		if item := FromDomainSettings(s); item != nil {
			resp.Settings = append(resp.Settings, *item)
		}
	}

	return resp
}

// ToDomainSettings конвертирует CreateSettingsRequest в domain модель
func (r *CreateSettingsRequest) ToDomainSettings() *domain.BookingSettings {
	s := &domain.BookingSettings{
		Scope:                   r.Scope,
		SlotDurationMinutes:     domain.DefaultSlotDurationMinutes,
		MaxConcurrentBookings:   domain.DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	}
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MaxConcurrentBookings != nil {
		s.MaxConcurrentBookings = *r.MaxConcurrentBookings
	}
	if r.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		s.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
	return s
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.BookingSettings) {
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MaxConcurrentBookings != nil {
		s.MaxConcurrentBookings = *r.MaxConcurrentBookings
	}
	if r.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		s.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
}

// DefaultSettingsResponse значения по умолчанию для scope без сохраненных настроек
func DefaultSettingsResponse(scope string) *SettingsResponse {
	return &SettingsResponse{
		Scope:                   scope,
		SlotDurationMinutes:     domain.DefaultSlotDurationMinutes,
		MaxConcurrentBookings:   domain.DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	}
}
