// Package dataloader provides per-request DataLoaders that batch field
// registry lookups for several teams into a single registry call.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// FieldRegistry resolves the field definitions of many teams at once.
type FieldRegistry interface {
	ListByTeams(ctx context.Context, teams []string) (map[string][]domain.Field, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	FieldsByTeam *dataloader.Loader[string, []domain.Field]
}

// NewLoaders creates a new set of DataLoaders backed by registry.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(registry FieldRegistry) *Loaders {
	return &Loaders{
		FieldsByTeam: newLoader(newFieldsBatchFn(registry)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newFieldsBatchFn(registry FieldRegistry) dataloader.BatchFunc[string, []domain.Field] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]domain.Field] {
		grouped, err := registry.ListByTeams(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Field](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[domain.Field])
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. ok is false when the
// request did not pass through Middleware.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []string, grouped map[string]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
