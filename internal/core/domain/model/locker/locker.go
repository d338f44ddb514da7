package locker

import (
	"errors"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// ErrLockerIsNotConstructed is returned when a zero-value Locker is used.
var ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")

// Locker is a parcel locker station.
//
// Invariants:
//   - ID is non-blank
//   - City is a known city
//   - Compartments hold the configured count of free slots per size
type Locker struct {
	id           string
	city         kernel.City
	location     kernel.Location
	compartments kernel.SizeCounts
	guard        guard.ConstructorGuard
}

// NewLocker creates a Locker.
//
// Example:
//
//	loc, _ := kernel.NewLocation(40.730610, -73.935242)
//	compartments, _ := kernel.NewSizeCounts(20, 15, 5)
//	l, err := locker.NewLocker("L001", kernel.NewYork, loc, compartments)
func NewLocker(id string, city kernel.City, location kernel.Location, compartments kernel.SizeCounts) (Locker, error) {
	l := Locker{
		compartments: compartments,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCity(city),
		l.setLocation(location),
	); err != nil {
		return Locker{}, err
	}

	return l, nil
}

// Validate checks that the Locker was built by NewLocker.
func (l Locker) Validate() error {
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

// ID returns the locker identifier.
func (l Locker) ID() string { return l.id }

// City returns the city the locker stands in.
func (l Locker) City() kernel.City { return l.city }

// Location returns the locker coordinates.
func (l Locker) Location() kernel.Location { return l.location }

// Compartments returns the configured compartment counts.
func (l Locker) Compartments() kernel.SizeCounts { return l.compartments }

// HasFreeCompartment reports whether at least one compartment of size is configured.
func (l Locker) HasFreeCompartment(size kernel.Size) bool {
	return l.compartments.Has(size)
}

func (l *Locker) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("locker_id")
	}
	l.id = id
	return nil
}

func (l *Locker) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	l.city = city
	return nil
}

func (l *Locker) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	l.location = location
	return nil
}
