package ingest

import (
	"log/slog"

	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// ParcelSchema describes parcel records:
//
//	{"parcel_id": "P12345", "height": 30, "length": 50, "weight": 5}
//
// Dimensions may be numbers or numeric strings but must be whole and positive.
func ParcelSchema() Schema[parcel.Parcel] {
	return Schema[parcel.Parcel]{
		Kind:     KindParcel,
		Required: []string{"parcel_id", "height", "length", "weight"},
		Rules: []Rule{
			identifierRule("parcel_id"),
			positiveRule("height", "length", "weight"),
		},
		Build:  buildParcel,
		Encode: encodeParcel,
	}
}

func buildParcel(rec ports.Record, _ *slog.Logger) (parcel.Parcel, error) {
	dims := make(map[string]int, 3)
	for _, key := range []string{"height", "length", "weight"} {
		n, ok := toInt(rec[key])
		if !ok {
			return parcel.Parcel{}, errs.NewConversionError(KindParcel, key, rec[key])
		}
		dims[key] = n
	}
	return parcel.NewParcel(textField(rec, "parcel_id"), dims["height"], dims["length"], dims["weight"])
}

func encodeParcel(p parcel.Parcel) ports.Record {
	return ports.Record{
		"parcel_id": p.ID(),
		"height":    p.Height(),
		"length":    p.Length(),
		"weight":    p.Weight(),
	}
}
