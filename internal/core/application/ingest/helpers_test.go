package ingest_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"maps"

	"parcellocker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRecordSource struct{ mock.Mock }

func (m *MockRecordSource) Read(ctx context.Context, filename string) ([]ports.Record, error) {
	args := m.Called(ctx, filename)
	records, _ := args.Get(0).([]ports.Record)
	return records, args.Error(1)
}

type MockRecordSink struct{ mock.Mock }

func (m *MockRecordSink) Write(ctx context.Context, filename string, records []ports.Record) error {
	args := m.Called(ctx, filename, records)
	return args.Error(0)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func capture() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func with(rec ports.Record, key string, value any) ports.Record {
	out := maps.Clone(rec)
	out[key] = value
	return out
}

func without(rec ports.Record, key string) ports.Record {
	out := maps.Clone(rec)
	delete(out, key)
	return out
}

func userRecord() ports.Record {
	return ports.Record{
		"email":     "john.doe@gmail.com",
		"name":      "John",
		"surname":   "Doe",
		"city":      "New York",
		"latitude":  40.712776,
		"longitude": -74.005974,
	}
}

func parcelRecord() ports.Record {
	return ports.Record{"parcel_id": "P12345", "height": 30, "length": 50, "weight": 5}
}

func lockerRecord() ports.Record {
	return ports.Record{
		"locker_id":    "L001",
		"city":         "New York",
		"latitude":     40.730610,
		"longitude":    -73.935242,
		"compartments": map[string]any{"small": 20, "medium": 15, "large": 5},
	}
}

func deliveryRecord() ports.Record {
	return ports.Record{
		"parcel_id":              "P12345",
		"locker_id":              "L001",
		"sender_email":           "alice.smith@example.com",
		"receiver_email":         "john.doe@example.com",
		"sent_date":              "2023-12-01",
		"expected_delivery_date": "2023-12-05",
	}
}
