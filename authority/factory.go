package authority

import (
	"fmt"

	"github.com/spatialkit/referencing-framework/metadata"
)

// Factory materializes metadata records from authority definitions. Records
// carry the authority and authority-code attributes of their definition,
// plus the precomputed WKT when the authority publishes one, and are
// canonicalized through the pool so repeated lookups of the same code share
// one live instance.
type Factory struct {
	store Store
	pool  *metadata.Pool
}

// NewFactory creates a Factory over the given store. A nil pool means the
// process-wide metadata.DefaultPool.
func NewFactory(store Store, pool *metadata.Pool) *Factory {
	if pool == nil {
		pool = metadata.DefaultPool
	}

	return &Factory{store: store, pool: pool}
}

// Create builds the canonical metadata record for the given authority and
// code.
func (f *Factory) Create(authority, code string) (metadata.Record, error) {
	def, err := f.store.Get(NewDefinitionKey(authority, code))
	if err != nil {
		return nil, fmt.Errorf("definition %s:%s: %w", authority, code, err)
	}

	opts := []metadata.Option{metadata.WithAuthority(def.Authority, def.Code)}
	if def.WKT != "" {
		opts = append(opts, metadata.WithWKT(def.WKT))
	}
	if def.Remarks != "" {
		opts = append(opts, metadata.WithRemarks(def.Remarks))
	}

	switch metadata.Kind(def.Kind) {
	case metadata.KindGeographicCS:
		rec, err := metadata.NewGeographicCS(def.Name, opts...)
		if err != nil {
			return nil, err
		}

		return metadata.Canonicalize(f.pool, rec), nil
	default:
		rec, err := metadata.NewInfo(metadata.Kind(def.Kind), def.Name, opts...)
		if err != nil {
			return nil, err
		}

		return metadata.Canonicalize(f.pool, rec), nil
	}
}
