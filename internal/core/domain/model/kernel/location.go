package kernel

import (
	"errors"
	"fmt"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"

	"github.com/tidwall/geodesic"
)

const (
	// LatitudeMin and LatitudeMax bound a valid latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound a valid longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point on the WGS-84 ellipsoid given in decimal degrees.
// Location is an immutable value object; the zero value is invalid.
//
// Example:
//
//	user, _ := kernel.NewLocation(40.712776, -74.005974)
//	locker, _ := kernel.NewLocation(40.730610, -73.935242)
//	km, err := user.DistanceKm(locker) // ~6.27
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location from decimal degrees.
// Both bounds are inclusive and NaN is rejected by both checks.
//
// Parameters:
//   - latitude: degrees north, between LatitudeMin and LatitudeMax
//   - longitude: degrees east, between LongitudeMin and LongitudeMax
//
// Returns:
//   - Location: a valid location
//   - error: errs.ValueIsOutOfRangeError for every coordinate out of bounds,
//     joined when both are
//
// Example:
//
//	loc, err := kernel.NewLocation(40.712776, -74.005974)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(40.712776,-74.005974)
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer as "Location(lat,lon)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

// DistanceKm returns the geodesic distance to other in kilometers, solved
// on the WGS-84 ellipsoid (Karney's inverse problem). The distance is
// symmetric and zero for identical points.
//
// Parameters:
//   - other: the second point, built by NewLocation
//
// Returns:
//   - float64: the distance in kilometers, never negative
//   - error: ErrLocationIsNotConstructed when either point is a zero value
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	var meters float64
	geodesic.WGS84.Inverse(l.latitude, l.longitude, other.latitude, other.longitude, &meters, nil, nil)
	return meters / 1000, nil
}

func (l *Location) setLatitude(latitude float64) error {
	if !(latitude >= LatitudeMin && latitude <= LatitudeMax) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if !(longitude >= LongitudeMin && longitude <= LongitudeMax) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
