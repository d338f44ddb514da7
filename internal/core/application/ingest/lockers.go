package ingest

import (
	"log/slog"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// LockerSchema describes locker records:
//
//	{"locker_id": "L001", "city": "New York", "latitude": 40.730610,
//	 "longitude": -73.935242, "compartments": {"small": 20, "medium": 15, "large": 5}}
//
// Only the presence of the compartments key is validated. When building, a
// compartments value that is not an object counts as empty, a missing or
// unusable size counts as zero and unparsable or out-of-range coordinates
// fall back to 0.0.
// Every such substitution is logged as an error.
func LockerSchema() Schema[locker.Locker] {
	return Schema[locker.Locker]{
		Kind:     KindLocker,
		Required: []string{"locker_id", "city", "latitude", "longitude", "compartments"},
		Rules: []Rule{
			identifierRule("locker_id"),
			cityRule,
		},
		Build:  buildLocker,
		Encode: encodeLocker,
	}
}

func buildLocker(rec ports.Record, logger *slog.Logger) (locker.Locker, error) {
	id := textField(rec, "locker_id")

	city, err := kernel.ParseCity(textField(rec, "city"))
	if err != nil {
		return locker.Locker{}, errs.NewConversionErrorWithCause(KindLocker, "city", rec["city"], err)
	}

	lat := coordinateOrZero(rec, "latitude", kernel.LatitudeMin, kernel.LatitudeMax, id, logger)
	lon := coordinateOrZero(rec, "longitude", kernel.LongitudeMin, kernel.LongitudeMax, id, logger)
	location, err := kernel.NewLocation(lat, lon)
	if err != nil {
		return locker.Locker{}, errs.NewConversionErrorWithCause(KindLocker, "latitude", rec["latitude"], err)
	}

	compartments, err := compartmentsOf(rec, id, logger)
	if err != nil {
		return locker.Locker{}, err
	}

	return locker.NewLocker(id, city, location, compartments)
}

// coordinateOrZero reads rec[key], which must lie in [lo, hi].
func coordinateOrZero(rec ports.Record, key string, lo, hi float64, lockerID string, logger *slog.Logger) float64 {
	f, ok := toFloat(rec[key])
	if !ok || !(f >= lo && f <= hi) {
		logger.Error("invalid coordinate, using 0.0 as fallback",
			"locker_id", lockerID, "field", key, "value", rec[key])
		return 0
	}
	return f
}

func compartmentsOf(rec ports.Record, lockerID string, logger *slog.Logger) (kernel.SizeCounts, error) {
	raw, ok := rec["compartments"].(map[string]any)
	if !ok {
		logger.Error("compartments is not an object, using empty compartments",
			"locker_id", lockerID, "value", rec["compartments"])
		raw = map[string]any{}
	}

	counts := make([]int, 0, kernel.SizeCount)
	for _, size := range kernel.Sizes() {
		v, present := raw[size.String()]
		if !present {
			counts = append(counts, 0)
			continue
		}
		n, ok := toInt(v)
		if !ok || n < 0 {
			logger.Error("invalid compartment count, using 0",
				"locker_id", lockerID, "size", size.String(), "value", v)
			n = 0
		}
		counts = append(counts, n)
	}

	compartments, err := kernel.NewSizeCounts(counts[0], counts[1], counts[2])
	if err != nil {
		return kernel.SizeCounts{}, errs.NewConversionErrorWithCause(KindLocker, "compartments", rec["compartments"], err)
	}
	return compartments, nil
}

func encodeLocker(l locker.Locker) ports.Record {
	c := l.Compartments()
	return ports.Record{
		"locker_id": l.ID(),
		"city":      l.City().String(),
		"latitude":  l.Location().Latitude(),
		"longitude": l.Location().Longitude(),
		"compartments": map[string]any{
			kernel.Small.String():  c.Small(),
			kernel.Medium.String(): c.Medium(),
			kernel.Large.String():  c.Large(),
		},
	}
}
