package changeset

import (
	"strings"
	"unicode"
)

// Changes holds the minimal diff between two snapshots.
// OldValues and NewValues always share the same key set.
type Changes struct {
	OldValues Object
	NewValues Object
}

// Diff compares before and after over the union of their keys (keys of
// before first, then keys present only in after). Every key whose values are
// not structurally equal is copied into both sides; a key absent on one side
// is recorded as Missing there. Equal keys never appear.
func Diff(before, after Object) Changes {
	var changes Changes

	for _, key := range unionKeys(before, after) {
		oldValue := before.Lookup(key)
		newValue := after.Lookup(key)

		if Equal(oldValue, newValue) {
			continue
		}
		changes.OldValues.Set(key, oldValue)
		changes.NewValues.Set(key, newValue)
	}

	return changes
}

// Fields returns the changed keys in diff order
func (c Changes) Fields() []string {
	return c.NewValues.Keys()
}

// IsEmpty reports whether nothing changed
func (c Changes) IsEmpty() bool {
	return c.NewValues.Len() == 0
}

// Apply writes the new side of the diff onto a copy of base. Keys whose new
// value is Missing are removed.
func (c Changes) Apply(base Object) Object {
	result := base.Clone()
	for _, f := range c.NewValues.fields {
		if f.Value.IsMissing() {
			result.Delete(f.Key)
			continue
		}
		result.Set(f.Key, f.Value)
	}
	return result
}

func unionKeys(before, after Object) []string {
	keys := make([]string, 0, before.Len()+after.Len())
	seen := make(map[string]struct{}, before.Len()+after.Len())

	for _, f := range before.fields {
		if _, ok := seen[f.Key]; ok {
			continue
		}
		seen[f.Key] = struct{}{}
		keys = append(keys, f.Key)
	}
	for _, f := range after.fields {
		if _, ok := seen[f.Key]; ok {
			continue
		}
		seen[f.Key] = struct{}{}
		keys = append(keys, f.Key)
	}
	return keys
}

// Summary renders a human-readable description of a change:
// "Updated <EntityType>: Field One, Field Two", or "Updated <EntityType>"
// when no fields changed.
func Summary(entityType string, changedFields []string) string {
	if len(changedFields) == 0 {
		return "Updated " + entityType
	}

	names := make([]string, len(changedFields))
	for i, field := range changedFields {
		names[i] = HumanizeField(field)
	}
	return "Updated " + entityType + ": " + strings.Join(names, ", ")
}

// HumanizeField turns a field key such as "max_concurrent_bookings" into
// "Max Concurrent Bookings": separators become spaces and the first letter
// of every word is upper-cased.
func HumanizeField(field string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, field)

	var b strings.Builder
	b.Grow(len(replaced))
	prevWord := false
	for _, r := range replaced {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevWord = isWord
	}
	return b.String()
}
