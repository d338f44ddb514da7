package ingest

import (
	"errors"
	"log/slog"

	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// Converter builds entities of one kind from validated raw records.
type Converter[T any] struct {
	schema Schema[T]
	logger *slog.Logger
}

// NewConverter creates a Converter for schema.
func NewConverter[T any](schema Schema[T], logger *slog.Logger) Converter[T] {
	return Converter[T]{
		schema: schema,
		logger: logger.With("component", "converter", "kind", schema.Kind),
	}
}

// Convert builds the entity held by rec. Every failure is reported as an
// *errs.ConversionError so callers can tell it apart from I/O errors.
func (c Converter[T]) Convert(rec ports.Record) (T, error) {
	entity, err := c.schema.Build(rec, c.logger)
	if err == nil {
		return entity, nil
	}

	var zero T
	var convErr *errs.ConversionError
	if errors.As(err, &convErr) {
		return zero, err
	}
	return zero, errs.NewConversionErrorWithCause(c.schema.Kind, "", map[string]any(rec), err)
}

// Encode turns an entity back into a raw record.
func (c Converter[T]) Encode(entity T) ports.Record {
	return c.schema.Encode(entity)
}
