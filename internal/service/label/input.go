package label

import (
	"strings"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const (
	// MaxLabelsPerJob bounds a single generate or print request.
	MaxLabelsPerJob = 500
	maxDimensionMM  = 1000
)

// CreateInput holds the parameters for creating a label.
type CreateInput struct {
	TeamName string
	Name     string
	Width    int
	Height   int
	Template map[string]any
	Active   bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeTeamName(i.TeamName) == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	errs = appendSizeErrors(errs, i.Width, i.Height)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JobInput selects the label layout and samples for a generate or print job.
type JobInput struct {
	TeamName  string
	Width     int
	Height    int
	SampleIDs []string
}

// Validate checks all fields and collects all errors.
func (i JobInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeTeamName(i.TeamName) == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "required"})
	}
	errs = appendSizeErrors(errs, i.Width, i.Height)
	if len(i.SampleIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "sample_ids", Message: "at least one sample required"})
	}
	if len(i.SampleIDs) > MaxLabelsPerJob {
		errs = append(errs, domain.FieldError{Field: "sample_ids", Message: "too many samples"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendSizeErrors(errs []domain.FieldError, width, height int) []domain.FieldError {
	if width <= 0 || width > maxDimensionMM {
		errs = append(errs, domain.FieldError{Field: "width", Message: "must be between 1 and 1000"})
	}
	if height <= 0 || height > maxDimensionMM {
		errs = append(errs, domain.FieldError{Field: "height", Message: "must be between 1 and 1000"})
	}
	return errs
}
