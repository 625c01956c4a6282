package sample

import (
	"strings"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// CreateInput holds the parameters for creating a sample.
type CreateInput struct {
	ID             string // optional; generated when empty
	TeamName       string
	DateCreated    time.Time // optional; defaults to now
	ExpirationDate time.Time
	Data           map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeTeamName(i.TeamName) == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "required"})
	}
	if i.ID != "" && strings.TrimSpace(i.ID) != i.ID {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not contain surrounding whitespace"})
	}
	if i.ExpirationDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "expiration_date", Message: "required"})
	}
	for key := range i.Data {
		if domain.IsReservedName(key) {
			errs = append(errs, domain.FieldError{Field: "data." + key, Message: "reserved attribute name"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PurgeResult summarises an expired-sample purge.
type PurgeResult struct {
	Deleted int
	Batches int
}
