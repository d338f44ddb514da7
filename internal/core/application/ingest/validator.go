package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"parcellocker/internal/core/ports"
)

// Validator decides whether raw records of one kind may be converted.
type Validator[T any] struct {
	schema Schema[T]
	logger *slog.Logger
}

// NewValidator creates a Validator for schema.
func NewValidator[T any](schema Schema[T], logger *slog.Logger) Validator[T] {
	return Validator[T]{
		schema: schema,
		logger: logger.With("component", "validator", "kind", schema.Kind),
	}
}

// Validate reports whether rec holds every required key and passes every
// rule. Each rejection is logged as a warning together with the record.
func (v Validator[T]) Validate(ctx context.Context, rec ports.Record) bool {
	if rec == nil {
		v.reject(ctx, rec, "record is empty")
		return false
	}

	if missing := missingKeys(rec, v.schema.Required); len(missing) > 0 {
		v.reject(ctx, rec, fmt.Sprintf("missing required keys: %v", missing))
		return false
	}

	for _, rule := range v.schema.Rules {
		if err := rule(ctx, rec); err != nil {
			v.reject(ctx, rec, err.Error())
			return false
		}
	}

	return true
}

func (v Validator[T]) reject(ctx context.Context, rec ports.Record, reason string) {
	v.logger.WarnContext(ctx, "record rejected", "reason", reason, "record", fmt.Sprintf("%v", map[string]any(rec)))
}
