package authority

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/spatialkit/referencing-framework/pkg/logger"
)

// Source provides authority definitions from a remote location, such as an
// authority's registry service.
type Source interface {
	FetchDefinitions(ctx context.Context) ([]Definition, error)
}

var defaultRetryOpts = []retry.Option{
	retry.Attempts(4),
	retry.Delay(500 * time.Millisecond),
	retry.LastErrorOnly(true),
}

// Syncer pulls definitions from a Source into a MutableStore. Transient
// fetch failures are retried with backoff; store failures are not.
type Syncer struct {
	source    Source
	store     MutableStore
	lggr      logger.Logger
	retryOpts []retry.Option
}

// NewSyncer creates a Syncer. Additional retry options override the
// defaults (4 attempts, 500ms initial delay).
func NewSyncer(source Source, store MutableStore, lggr logger.Logger, opts ...retry.Option) *Syncer {
	return &Syncer{
		source:    source,
		store:     store,
		lggr:      logger.Named(lggr, "AuthoritySyncer"),
		retryOpts: append(append([]retry.Option{}, defaultRetryOpts...), opts...),
	}
}

// Sync fetches the source definitions and upserts them into the store,
// returning the number of definitions synced.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	defs, err := retry.DoWithData(func() ([]Definition, error) {
		return s.source.FetchDefinitions(ctx)
	}, append([]retry.Option{retry.Context(ctx)}, s.retryOpts...)...)
	if err != nil {
		return 0, fmt.Errorf("fetch definitions: %w", err)
	}

	for _, def := range defs {
		if err := s.store.Upsert(def); err != nil {
			return 0, fmt.Errorf("upsert definition %s: %w", def.Key(), err)
		}
	}

	s.lggr.Infow("synced authority definitions", "count", len(defs))

	return len(defs), nil
}
