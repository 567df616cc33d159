package domain

import (
	"time"

	"github.com/m04kA/SMC-AdminService/pkg/changeset"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

// BlockedDate is a single calendar day marked unavailable for booking.
// At most one record exists per Date; records are never updated in place.
type BlockedDate struct {
	ID        string
	Date      types.Date
	Reason    *string // NULL = no reason given
	CreatedAt time.Time
}

// HasReason returns true if the admin supplied a reason
func (b *BlockedDate) HasReason() bool {
	return b.Reason != nil && *b.Reason != ""
}

// Snapshot returns the audited fields of the record
func (b *BlockedDate) Snapshot() changeset.Object {
	if b == nil {
		return changeset.Object{}
	}
	reason := changeset.Null()
	if b.Reason != nil {
		reason = changeset.String(*b.Reason)
	}
	return changeset.NewObject(
		changeset.F("date", changeset.String(b.Date.String())),
		changeset.F("reason", reason),
	)
}

// BlockedDateRange is an inclusive window of calendar days used for range queries
type BlockedDateRange struct {
	From types.Date // zero = unbounded
	To   types.Date // zero = unbounded
}

// Contains reports whether d falls inside the window
func (r BlockedDateRange) Contains(d types.Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}
