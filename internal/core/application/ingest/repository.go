package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// DataRepository owns the ingest pipeline of one entity kind and caches
// the entities of the last successful refresh in source order.
//
// A DataRepository is not safe for concurrent use; callers serialize
// refreshes and reads.
type DataRepository[T any] struct {
	source    ports.RecordSource
	validator Validator[T]
	converter Converter[T]
	filename  string

	entities []T
	loaded   bool

	logger *slog.Logger
}

// NewDataRepository creates a repository reading filename from source.
// It does not read anything until Refresh is called.
//
// Returns errs.ValueIsRequiredError when filename is empty.
//
// Example:
//
//	users, err := ingest.NewDataRepository(reader, ingest.UserSchema(nil), "data/users.json", logger)
//	if err != nil {
//	    return err
//	}
//	if _, err = users.Refresh(ctx, ""); err != nil {
//	    return err
//	}
func NewDataRepository[T any](
	source ports.RecordSource,
	schema Schema[T],
	filename string,
	logger *slog.Logger,
) (*DataRepository[T], error) {
	if filename == "" {
		return nil, errs.NewValueIsRequiredError("filename")
	}

	return &DataRepository[T]{
		source:    source,
		validator: NewValidator(schema, logger),
		converter: NewConverter(schema, logger),
		filename:  filename,
		logger:    logger.With("component", "data_repository", "kind", schema.Kind),
	}, nil
}

// Filename returns the source location given at construction.
func (r *DataRepository[T]) Filename() string {
	return r.filename
}

// Refresh reloads the cache from filename, or from the stored filename when
// filename is empty. Rejected records are logged and skipped. On a read or
// conversion error the previous cache is left untouched.
func (r *DataRepository[T]) Refresh(ctx context.Context, filename string) ([]T, error) {
	if filename == "" {
		r.logger.WarnContext(ctx, "no filename provided, using default filename", "filename", r.filename)
		filename = r.filename
	}

	r.logger.InfoContext(ctx, "refreshing data", "filename", filename)

	records, err := r.source.Read(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	entities := make([]T, 0, len(records))
	for _, rec := range records {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !r.validator.Validate(ctx, rec) {
			continue
		}
		entity, convErr := r.converter.Convert(rec)
		if convErr != nil {
			r.logger.ErrorContext(ctx, "conversion failed, keeping previous data", "filename", filename, "error", convErr)
			return nil, convErr
		}
		entities = append(entities, entity)
	}

	r.entities = entities
	r.loaded = true

	r.logger.InfoContext(ctx, "data refreshed",
		"filename", filename, "accepted", len(entities), "rejected", len(records)-len(entities))

	return slices.Clone(entities), nil
}

// Get returns the cached entities. It never reads the source; an empty
// cache is logged as a warning.
func (r *DataRepository[T]) Get() []T {
	if !r.loaded || len(r.entities) == 0 {
		r.logger.Warn("no data available in cache", "loaded", r.loaded)
		return []T{}
	}
	return slices.Clone(r.entities)
}

// Export writes the cached entities back as raw records to filename on
// sink, or to the stored filename when filename is empty.
func (r *DataRepository[T]) Export(ctx context.Context, sink ports.RecordSink, filename string) error {
	if filename == "" {
		filename = r.filename
	}

	records := make([]ports.Record, 0, len(r.entities))
	for _, entity := range r.entities {
		records = append(records, r.converter.Encode(entity))
	}

	if err := sink.Write(ctx, filename, records); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	r.logger.InfoContext(ctx, "data exported", "filename", filename, "records", len(records))
	return nil
}
