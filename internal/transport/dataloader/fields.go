package dataloader

import (
	"context"
	"slices"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Registry is the field registry behind a FieldSource.
type Registry interface {
	FieldRegistry
	ListByTeam(ctx context.Context, team string) ([]domain.Field, error)
	Invalidate(team string)
}

// FieldSource serves per-team field lookups through the request's loader when
// one is present and straight from the registry otherwise.
type FieldSource struct {
	registry Registry
}

// NewFieldSource wraps registry.
func NewFieldSource(registry Registry) *FieldSource {
	return &FieldSource{registry: registry}
}

// ListByTeam returns the ordered field definitions of team.
func (s *FieldSource) ListByTeam(ctx context.Context, team string) ([]domain.Field, error) {
	l, ok := FromContext(ctx)
	if !ok {
		return s.registry.ListByTeam(ctx, team)
	}
	fields, err := l.FieldsByTeam.Load(ctx, domain.NormalizeTeamName(team))()
	if err != nil {
		return nil, err
	}
	return slices.Clone(fields), nil
}

// Invalidate drops team from the registry cache and from the request's loader.
func (s *FieldSource) Invalidate(ctx context.Context, team string) {
	s.registry.Invalidate(team)
	if l, ok := FromContext(ctx); ok {
		l.FieldsByTeam.Clear(ctx, domain.NormalizeTeamName(team))
	}
}
