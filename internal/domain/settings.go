package domain

import (
	"time"

	"github.com/m04kA/SMC-AdminService/pkg/changeset"
)

// GlobalSettingsScope is the scope of the site-wide booking settings record
const GlobalSettingsScope = "global"

// BookingSettings is an admin-mutable configuration record that controls how
// customers may book. Every successful mutation is recorded in the audit trail.
// Scope identifies the record: "global" or a service-specific key such as
// "chauffeur" or "close_protection".
type BookingSettings struct {
	ID                      int64
	Scope                   string
	SlotDurationMinutes     int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsGlobal returns true if this is the site-wide record
func (s *BookingSettings) IsGlobal() bool {
	return s.Scope == GlobalSettingsScope
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (s *BookingSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// SupportsParallelBookings returns true if multiple concurrent bookings are supported
func (s *BookingSettings) SupportsParallelBookings() bool {
	return s.MaxConcurrentBookings > 1
}

// Snapshot returns the audited fields of the record. Timestamps and the
// database id are excluded so that they never show up as changes.
func (s *BookingSettings) Snapshot() changeset.Object {
	if s == nil {
		return changeset.Object{}
	}
	return changeset.NewObject(
		changeset.F("scope", changeset.String(s.Scope)),
		changeset.F("slot_duration_minutes", changeset.Number(float64(s.SlotDurationMinutes))),
		changeset.F("max_concurrent_bookings", changeset.Number(float64(s.MaxConcurrentBookings))),
		changeset.F("advance_booking_days", changeset.Number(float64(s.AdvanceBookingDays))),
		changeset.F("min_booking_notice_minutes", changeset.Number(float64(s.MinBookingNoticeMinutes))),
	)
}
