package ingest

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/ports"
)

// Rule checks one aspect of a raw record that already holds every required
// key. A non-nil error rejects the record; its message becomes the logged
// rejection reason.
type Rule func(ctx context.Context, rec ports.Record) error

// Schema describes one entity kind for the generic pipeline.
//
// Build may assume the record passed validation. It returns a
// *errs.ConversionError when a value still cannot be represented. Encode is
// the inverse of Build and is used when entities are written back to a sink.
type Schema[T any] struct {
	Kind     string
	Required []string
	Rules    []Rule
	Build    func(rec ports.Record, logger *slog.Logger) (T, error)
	Encode   func(entity T) ports.Record
}
