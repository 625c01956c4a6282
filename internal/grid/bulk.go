package grid

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// SampleDeleter removes a sample by id.
type SampleDeleter interface {
	Delete(ctx context.Context, id string) error
}

// SampleLister lists the samples of a team.
type SampleLister interface {
	ListByTeam(ctx context.Context, team string) ([]domain.Sample, error)
}

// FieldLister lists the field definitions of a team.
type FieldLister interface {
	ListByTeam(ctx context.Context, team string) ([]domain.Field, error)
}

// DeleteResult reports the outcome of a bulk delete.
type DeleteResult struct {
	Deleted []string
	Failed  map[string]error
}

// Err joins the per-sample failures, or returns nil when all deletes succeeded.
func (r DeleteResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for id, err := range r.Failed {
		errs = append(errs, fmt.Errorf("sample %s: %w", id, err))
	}
	return errors.Join(errs...)
}

// DeleteSelected issues one independent delete per selected sample. A failed
// delete does not stop the remaining ones; there is no rollback.
func DeleteSelected(ctx context.Context, d SampleDeleter, selected []domain.Sample) DeleteResult {
	res := DeleteResult{
		Deleted: make([]string, 0, len(selected)),
		Failed:  make(map[string]error),
	}
	for _, s := range selected {
		if err := d.Delete(ctx, s.ID); err != nil {
			res.Failed[s.ID] = err
			continue
		}
		res.Deleted = append(res.Deleted, s.ID)
	}
	return res
}

// View is the loaded state of a team's table: samples, fields, and the
// columns and rows derived from them.
type View struct {
	Team    string
	Samples []domain.Sample
	Fields  []domain.Field
	Columns []Column
	Rows    []Row
}

// Refresh fetches the team's samples and fields concurrently and rebuilds
// columns and rows from them. Previously derived columns must be discarded.
func Refresh(ctx context.Context, samples SampleLister, fields FieldLister, p *Projector, team string) (*View, error) {
	var (
		loadedSamples []domain.Sample
		loadedFields  []domain.Field
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		loadedSamples, err = samples.ListByTeam(gctx, team)
		if err != nil {
			return fmt.Errorf("list samples: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		loadedFields, err = fields.ListByTeam(gctx, team)
		if err != nil {
			return fmt.Errorf("list fields: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codec := NewCodec(p, loadedFields)
	return &View{
		Team:    team,
		Samples: loadedSamples,
		Fields:  loadedFields,
		Columns: codec.Columns(),
		Rows:    codec.UnpackAll(loadedSamples),
	}, nil
}
