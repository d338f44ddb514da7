package kernel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// City is the enumeration of cities the locker network operates in.
// Raw records carry cities by their display name ("New York").
type City int

const (
	// UnknownCity is the zero value and never valid.
	UnknownCity City = iota
	NewYork
	LosAngeles
	Chicago
	SanFrancisco
)

func getCityNames() map[City]string {
	return map[City]string{
		NewYork:      "New York",
		LosAngeles:   "Los Angeles",
		Chicago:      "Chicago",
		SanFrancisco: "San Francisco",
	}
}

// ParseCity resolves a display name to its City.
// The match is exact and case-sensitive.
func ParseCity(name string) (City, error) {
	for c, n := range getCityNames() {
		if n == name {
			return c, nil
		}
	}
	return UnknownCity, errs.NewValueIsInvalidErrorWithCause("city", fmt.Errorf("%q is not a known city", name))
}

// Validate reports whether c is one of the known cities.
func (c City) Validate() error {
	if _, ok := getCityNames()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("city", fmt.Errorf("%d is not a known city", c))
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (c City) String() string {
	if n, ok := getCityNames()[c]; ok {
		return n
	}
	return "Unknown"
}
