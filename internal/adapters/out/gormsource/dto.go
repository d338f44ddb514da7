// Package gormsource stores raw datasets in a relational database through
// GORM. Every record is one row of the raw_records table, keyed by the
// dataset it belongs to and its position in that dataset.
package gormsource

import (
	"bytes"
	"encoding/json"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordDTO is one stored raw record.
type RecordDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Dataset  string         `gorm:"type:varchar(255);not null;index:idx_raw_records_dataset_position,priority:1"`
	Position int            `gorm:"type:int;not null;index:idx_raw_records_dataset_position,priority:2"`
	Payload  datatypes.JSON `gorm:"not null"`
}

// TableName overrides GORM's default "record_dtos".
func (RecordDTO) TableName() string {
	return "raw_records"
}

func fromRecord(dataset string, position int, rec ports.Record) (RecordDTO, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return RecordDTO{}, err
	}

	return RecordDTO{
		ID:       kernel.NewUUID().Bytes(),
		Dataset:  dataset,
		Position: position,
		Payload:  datatypes.JSON(payload),
	}, nil
}

// toRecord decodes the payload keeping numbers as json.Number, the same
// representation the JSON file source produces.
func toRecord(dto RecordDTO) (ports.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(dto.Payload))
	dec.UseNumber()

	var rec ports.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}
