// Package analytics computes sales metrics over stored order documents.
//
// Every operation is a single read-then-compute call: it takes one bulk
// snapshot from the order source, folds it through an explicit group/reduce
// pass in memory, and returns freshly computed rows. Nothing is cached or
// materialized, and the source is never written to, so concurrent calls
// are safe by construction.
package analytics

import (
	"context"

	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/pkg/apperror"
)

// OrderSource is the read-only order store surface the engine depends on.
// Implementations must return orders with line items loaded, as a finite
// snapshot; the gorm order repository satisfies this interface.
type OrderSource interface {
	// ScanAll returns every stored order.
	ScanAll(ctx context.Context) ([]entity.Order, error)
	// ScanYear returns orders created in [year-01-01, (year+1)-01-01).
	ScanYear(ctx context.Context, year int) ([]entity.Order, error)
}

// Engine is the sales analytics engine. It holds no state beyond its
// injected order source.
type Engine struct {
	source OrderSource
}

// NewEngine creates an analytics engine backed by the given order source
func NewEngine(source OrderSource) *Engine {
	return &Engine{source: source}
}

// fetch reads the order snapshot, optionally restricted to a single year.
// Source failures abort the operation: computing over partial data would
// silently produce misleading metrics.
func (e *Engine) fetch(ctx context.Context, year *int) ([]entity.Order, error) {
	if e.source == nil {
		return nil, apperror.ErrStorageUnavailable
	}

	var (
		orders []entity.Order
		err    error
	)
	if year != nil {
		orders, err = e.source.ScanYear(ctx, *year)
	} else {
		orders, err = e.source.ScanAll(ctx)
	}
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return orders, nil
}
