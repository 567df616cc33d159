package domain

// Default booking settings values
const (
	DefaultSlotDurationMinutes     = 30
	DefaultMaxConcurrentBookings   = 1
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MinConcurrentBookings   = 1
	MaxConcurrentBookings   = 100
	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365 // 1 year
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 10080 // 1 week
	MaxBlockReasonLength    = 500
	MaxBlockRangeDays       = 366 // один год включительно
	MaxScopeLength          = 64
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Entity type labels written to the audit trail
const (
	EntityTypeBlockedDate     = "Blocked Date"
	EntityTypeBookingSettings = "Booking Settings"
)

// Audit log console defaults
const (
	DefaultAuditPageSize = 20
	MaxAuditPageSize     = 200
)
