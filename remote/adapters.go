package remote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spatialkit/referencing-framework/metadata"
	"github.com/spatialkit/referencing-framework/pkg/logger"
)

// Registrar registers exports with the remote-object runtime. It is the
// external collaborator owning the wire protocol; this package only models
// the adapter surface. Registration failures propagate to the caller of
// ExportFor and are not retried.
type Registrar interface {
	Register(ctx context.Context, id string, export InfoExport) error
}

// Adapters creates and caches remote exports for metadata records. Each
// record holds at most one live export at a time; concurrent first accesses
// to the same record create exactly one.
type Adapters struct {
	registrar Registrar
	lggr      logger.Logger
}

// NewAdapters creates an Adapters originator backed by the given registrar.
func NewAdapters(registrar Registrar, lggr logger.Logger) *Adapters {
	return &Adapters{
		registrar: registrar,
		lggr:      logger.Named(lggr, "RemoteAdapters"),
	}
}

// ExportFor returns the remote export for rec, creating and registering it
// on first access. The export variant follows the record variant: records
// carrying a linear unit yield a LinearUnitExport, records carrying an
// angular unit yield an AngularUnitExport.
func (a *Adapters) ExportFor(ctx context.Context, rec metadata.Record) (InfoExport, error) {
	proxy, err := rec.CachedProxy(func() (any, metadata.ProxyRef, error) {
		return a.createExport(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	ie, ok := proxy.(InfoExport)
	if !ok {
		return nil, fmt.Errorf("cached proxy for %q is %T, not a remote export", rec.Name(), proxy)
	}

	return ie, nil
}

func (a *Adapters) createExport(ctx context.Context, rec metadata.Record) (any, metadata.ProxyRef, error) {
	base := export{id: uuid.New().String(), record: rec}

	switch r := rec.(type) {
	case *metadata.ProjectedCS:
		e := &linearUnitExport{export: base, metersPerUnit: r.Unit().ScaleToBase()}
		if err := a.register(ctx, e); err != nil {
			return nil, nil, err
		}

		return e, newExportRef(e), nil
	case *metadata.PrimeMeridian:
		e := &angularUnitExport{export: base, radiansPerUnit: r.Unit().ScaleToBase()}
		if err := a.register(ctx, e); err != nil {
			return nil, nil, err
		}

		return e, newExportRef(e), nil
	default:
		e := &base
		if err := a.register(ctx, e); err != nil {
			return nil, nil, err
		}

		return e, newExportRef(e), nil
	}
}

func (a *Adapters) register(ctx context.Context, e InfoExport) error {
	if err := a.registrar.Register(ctx, e.ID(), e); err != nil {
		return fmt.Errorf("register export: %w", err)
	}
	a.lggr.Debugw("registered export", "id", e.ID())

	return nil
}
