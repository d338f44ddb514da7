package gormsource

import (
	"context"
	"fmt"
	"log/slog"

	"parcellocker/internal/core/ports"

	"gorm.io/gorm"
)

const batchSize = 500

// Store is a ports.RecordStore over GORM. The filename given to Read and
// Write names the dataset.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ ports.RecordStore = (*Store)(nil)

// NewStore creates a Store over db. Call Migrate once before use.
func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger.With("component", "gormsource")}
}

// Migrate creates or updates the raw_records table.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&RecordDTO{})
}

// Read returns the records of dataset in position order. An unknown
// dataset reads as empty.
func (s *Store) Read(ctx context.Context, dataset string) ([]ports.Record, error) {
	var dtos []RecordDTO
	if err := s.db.WithContext(ctx).
		Where("dataset = ?", dataset).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", dataset, err)
	}

	if len(dtos) == 0 {
		s.logger.Warn("dataset is empty", "dataset", dataset)
	}

	records := make([]ports.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toRecord(dto)
		if err != nil {
			return nil, fmt.Errorf("decode record %d of dataset %s: %w", dto.Position, dataset, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Write replaces every row of dataset with records in one transaction.
func (s *Store) Write(ctx context.Context, dataset string, records []ports.Record) error {
	dtos := make([]RecordDTO, 0, len(records))
	for i, rec := range records {
		dto, err := fromRecord(dataset, i, rec)
		if err != nil {
			return fmt.Errorf("encode record %d of dataset %s: %w", i, dataset, err)
		}
		dtos = append(dtos, dto)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dataset = ?", dataset).Delete(&RecordDTO{}).Error; err != nil {
			return err
		}
		if len(dtos) == 0 {
			return nil
		}
		return tx.CreateInBatches(dtos, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("write dataset %s: %w", dataset, err)
	}

	s.logger.Info("dataset written", "dataset", dataset, "count", len(dtos))
	return nil
}
