package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/ports"
)

// missingKeys returns the keys of required absent from rec, in order.
func missingKeys(rec ports.Record, required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := rec[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func stringField(rec ports.Record, key string) (string, error) {
	s, ok := rec[key].(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, rec[key])
	}
	return s, nil
}

// toFloat accepts any JSON-like number or a numeric string.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// maxExactFloatInt is the largest integer a float64 holds without rounding.
const maxExactFloatInt = 1 << 53

// toInt accepts numbers and numeric strings that carry no fractional part.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	case bool:
		return 0, false
	}

	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		math.Abs(f) > maxExactFloatInt {
		return 0, false
	}
	return int(f), true
}

// parseDate accepts a time.Time, an integral Unix timestamp in seconds or a
// "2006-01-02" string. The result is the calendar date in UTC.
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return delivery.Date(d), nil
	case string:
		t, err := time.Parse(delivery.DateLayout, strings.TrimSpace(d))
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	case json.Number, int, int32, int64, float64:
		sec, ok := toInt(d)
		if !ok {
			return time.Time{}, fmt.Errorf("%v is not a whole Unix timestamp", d)
		}
		return delivery.Date(time.Unix(int64(sec), 0).UTC()), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}
