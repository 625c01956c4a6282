// Package field serves the per-team field registry. Reads go through a
// short-lived in-memory cache that a table refresh invalidates.
package field

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

//go:generate moq -out field_repo_mock_test.go -pkg field . fieldRepo

type fieldRepo interface {
	ListAll(ctx context.Context) ([]domain.Field, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Field, error)
	ListByTeams(ctx context.Context, teams []string) ([]domain.Field, error)
}

// Service provides read access to team field definitions.
type Service struct {
	fields fieldRepo
	cache  *cache.Cache
	log    *slog.Logger
}

// NewService creates a new field Service. A zero ttl disables caching.
func NewService(log *slog.Logger, fields fieldRepo, ttl, cleanupInterval time.Duration) *Service {
	s := &Service{
		fields: fields,
		log:    log.With("service", "field"),
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, cleanupInterval)
	}
	return s
}

// ListAll returns every team's field definitions. It bypasses the cache.
func (s *Service) ListAll(ctx context.Context) ([]domain.Field, error) {
	fields, err := s.fields.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all fields: %w", err)
	}
	return fields, nil
}

// ListByTeam returns the ordered field definitions of team.
func (s *Service) ListByTeam(ctx context.Context, team string) ([]domain.Field, error) {
	team = domain.NormalizeTeamName(team)
	if team == "" {
		return nil, domain.NewValidationError("team_name", "required")
	}

	if cached, ok := s.cached(team); ok {
		return cached, nil
	}

	fields, err := s.fields.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list fields for team %s: %w", team, err)
	}
	s.store(team, fields)

	return slices.Clone(fields), nil
}

// ListByTeams returns field definitions keyed by team. Teams missing from the
// cache are fetched with a single query; teams without fields map to an empty
// slice.
func (s *Service) ListByTeams(ctx context.Context, teams []string) (map[string][]domain.Field, error) {
	result := make(map[string][]domain.Field, len(teams))
	var missing []string

	for _, team := range teams {
		team = domain.NormalizeTeamName(team)
		if _, seen := result[team]; seen || team == "" {
			continue
		}
		if cached, ok := s.cached(team); ok {
			result[team] = cached
			continue
		}
		result[team] = []domain.Field{}
		missing = append(missing, team)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fields, err := s.fields.ListByTeams(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("list fields for %d teams: %w", len(missing), err)
	}
	for _, f := range fields {
		result[f.TeamName] = append(result[f.TeamName], f)
	}
	for _, team := range missing {
		s.store(team, result[team])
	}

	s.log.DebugContext(ctx, "fields batch loaded",
		slog.Int("teams", len(missing)),
		slog.Int("fields", len(fields)),
	)

	return result, nil
}

// Invalidate drops the cached definitions of team.
func (s *Service) Invalidate(team string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(domain.NormalizeTeamName(team))
}

// InvalidateAll drops every cached team.
func (s *Service) InvalidateAll() {
	if s.cache == nil {
		return
	}
	s.cache.Flush()
}

func (s *Service) cached(team string) ([]domain.Field, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(team)
	if !ok {
		return nil, false
	}
	return slices.Clone(v.([]domain.Field)), true
}

func (s *Service) store(team string, fields []domain.Field) {
	if s.cache == nil {
		return
	}
	s.cache.Set(team, slices.Clone(fields), cache.DefaultExpiration)
}
