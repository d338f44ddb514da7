package user

import (
	"errors"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a zero-value User is used.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a sender or receiver of parcels.
//
// User is an immutable, comparable value: two users built from the same
// attributes are equal and may be used as map keys.
type User struct {
	email    string
	name     string
	surname  string
	city     kernel.City
	location kernel.Location
	guard    guard.ConstructorGuard
}

// NewUser creates a User. Email is the unique identifier and must be
// non-blank; the city must be known and the location constructed.
//
// Example:
//
//	loc, _ := kernel.NewLocation(40.712776, -74.005974)
//	u, err := user.NewUser("john.doe@gmail.com", "John", "Doe", kernel.NewYork, loc)
func NewUser(email, name, surname string, city kernel.City, location kernel.Location) (User, error) {
	u := User{
		name:    name,
		surname: surname,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setCity(city),
		u.setLocation(location),
	); err != nil {
		return User{}, err
	}

	return u, nil
}

// Validate checks that the User was built by NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Email returns the unique identifier of the user.
func (u User) Email() string { return u.email }

// Name returns the first name.
func (u User) Name() string { return u.name }

// Surname returns the last name.
func (u User) Surname() string { return u.surname }

// City returns the city the user lives in.
func (u User) City() kernel.City { return u.city }

// Location returns the user's coordinates.
func (u User) Location() kernel.Location { return u.location }

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	u.city = city
	return nil
}

func (u *User) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	u.location = location
	return nil
}
