package domain

import (
	"time"

	"github.com/google/uuid"
)

// Label is a printable label layout owned by a team. A team may keep several
// labels, but only one active label per size.
type Label struct {
	ID        uuid.UUID
	TeamName  string
	Name      string
	Width     int // millimetres
	Height    int // millimetres
	Template  map[string]any
	Active    bool
	CreatedAt time.Time
}

// SameSize reports whether two labels share dimensions.
func (l Label) SameSize(other Label) bool {
	return l.Width == other.Width && l.Height == other.Height
}

// LabelImage is a rendered label for a single sample.
type LabelImage struct {
	SampleID    string
	ContentType string
	Content     []byte
}
