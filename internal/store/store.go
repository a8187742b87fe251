package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/salesclean/internal/model"
)

// Run is one completed cleaning run handed to sinks for export.
type Run struct {
	ID        uuid.UUID
	Source    string // Input file path
	StartedAt time.Time
	Records   []model.CleanRecord
	Stats     model.RunStats
}

// Sink exports a completed run to a destination.
type Sink interface {
	Name() string
	Export(ctx context.Context, run Run) error
	Close() error
}

// ExportAll fans a run out to every sink. The first sink error fails the
// export; remaining exports are cancelled.
func ExportAll(ctx context.Context, run Run, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range sinks {
		s := s
		g.Go(func() error {
			return s.Export(ctx, run)
		})
	}
	return g.Wait()
}
