// Package ports defines the contracts between the application core and its
// adapters: raw record sources and sinks, the entity catalog, notification
// delivery and report rendering.
package ports

import (
	"context"
)

// Record is one untyped key-value row of a raw dataset, exactly as the
// source produced it. Values are JSON-like: strings, numbers, booleans,
// nested maps and slices.
type Record map[string]any

// RecordSource reads the ordered raw records stored under filename.
// The order of the returned slice is the source order.
type RecordSource interface {
	Read(ctx context.Context, filename string) ([]Record, error)
}

// RecordSink replaces the records stored under filename with records.
// Reading the same filename back yields an equal record set.
type RecordSink interface {
	Write(ctx context.Context, filename string, records []Record) error
}

// RecordStore is a source that can also be written to.
type RecordStore interface {
	RecordSource
	RecordSink
}
