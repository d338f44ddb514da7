// Package jsonfile reads and writes raw datasets stored as JSON files, each
// file holding one array of objects.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"parcellocker/internal/core/ports"
)

// Store is a ports.RecordStore over the local filesystem. Numbers are
// decoded as json.Number so integral values keep their exact form.
type Store struct {
	logger *slog.Logger
}

var _ ports.RecordStore = (*Store)(nil)

// NewStore creates a Store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger.With("component", "jsonfile")}
}

// Read decodes filename. The top-level value must be an array of objects.
func (s *Store) Read(ctx context.Context, filename string) ([]ports.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var records []ports.Record
	if err = dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	s.logger.Debug("records read", "filename", filename, "count", len(records))
	return records, nil
}

// Write replaces filename with records as a 4-space indented UTF-8 array.
// HTML characters are written as is. Missing parent directories are created.
func (s *Store) Write(ctx context.Context, filename string, records []ports.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []ports.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", filename, err)
		}
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	s.logger.Debug("records written", "filename", filename, "count", len(records))
	return nil
}
