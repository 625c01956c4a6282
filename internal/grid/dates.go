package grid

import (
	"strings"
	"time"
)

const (
	// DisplayLayout renders calendar dates in grid cells (MM/dd/yyyy).
	DisplayLayout = "01/02/2006"

	// StoredLayout is the normalized timestamp form kept in data maps and
	// payloads: ISO-8601 with milliseconds and offset.
	StoredLayout = "2006-01-02T15:04:05.000Z07:00"

	// InvalidDisplay is what an unparseable timestamp renders as.
	InvalidDisplay = "Invalid DateTime"
)

// accepted input layouts, tried in order.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	DisplayLayout,
}

// Timestamp is a parsed timestamp that remembers whether parsing succeeded.
// The zero value is invalid.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// ValidTimestamp wraps t.
func ValidTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// ParseTimestamp parses ISO-8601 (with or without offset, date-only) and
// MM/dd/yyyy strings. Input without an offset is read as wall time in loc
// (nil means UTC). Malformed input yields an invalid Timestamp, never an error.
func ParseTimestamp(s string, loc *time.Location) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ValidTimestamp(t)
		}
	}
	return Timestamp{}
}

// TimestampOf converts a cell or data-map value into a Timestamp. Strings are
// parsed in loc; time values are taken as-is; anything else is invalid.
func TimestampOf(v any, loc *time.Location) Timestamp {
	switch x := v.(type) {
	case Timestamp:
		return x
	case time.Time:
		if x.IsZero() {
			return Timestamp{}
		}
		return ValidTimestamp(x)
	case *time.Time:
		if x == nil {
			return Timestamp{}
		}
		return TimestampOf(*x, loc)
	case string:
		return ParseTimestamp(x, loc)
	default:
		return Timestamp{}
	}
}

// Equal reports whether both timestamps are valid and denote the same instant.
// An invalid timestamp is equal to nothing, including another invalid one.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Valid && other.Valid && t.Time.Equal(other.Time)
}

// Display formats the timestamp as a calendar date in loc (nil keeps the
// timestamp's own offset).
func (t Timestamp) Display(loc *time.Location) string {
	if !t.Valid {
		return InvalidDisplay
	}
	tt := t.Time
	if loc != nil {
		tt = tt.In(loc)
	}
	return tt.Format(DisplayLayout)
}

// Stored returns the normalized storage form, or "" when invalid.
func (t Timestamp) Stored() string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(StoredLayout)
}

// SameDate reports whether both timestamps fall on the same calendar date in loc.
func (t Timestamp) SameDate(other Timestamp, loc *time.Location) bool {
	if !t.Valid || !other.Valid {
		return false
	}
	return t.Display(loc) == other.Display(loc)
}
