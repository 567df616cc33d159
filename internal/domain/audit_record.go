package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-AdminService/pkg/changeset"
)

// Audit action labels used by admin call sites
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditRecord is an immutable entry of the audit trail: who changed what,
// as a minimal before/after field diff. OldValues and NewValues always share
// the same key set.
type AuditRecord struct {
	ID         string
	ActorID    string
	Action     string
	EntityType string
	TableName  string  // EntityType normalized to snake_case
	EntityID   *string // NULL when the action has no single target
	Summary    string
	OldValues  changeset.Object
	NewValues  changeset.Object
	CreatedAt  time.Time
}

// ChangedFields returns the keys present in the diff
func (r *AuditRecord) ChangedFields() []string {
	return r.NewValues.Keys()
}

// TableNameFor normalizes an entity type label to a table-like name:
// lower case, whitespace runs replaced by a single underscore
func TableNameFor(entityType string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(entityType), "_")
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// AuditFilter filters audit records for the admin console
type AuditFilter struct {
	EntityType *string    // matches TableName or EntityType
	Search     *string    // case-insensitive substring of ActorID or Action
	Since      *time.Time // created_at >= Since
	Limit      int
	Offset     int
}
