package queries

import (
	"errors"
	"strings"

	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrFindLockerQueryIsNotConstructed = errors.New(
	"FindLockerQuery must be created via NewFindLockerQuery constructor",
)

// FindLockerQuery looks up the nearest active locker able to take a parcel
// for the user identified by email.
//
// Example:
//
//	p, _ := parcel.NewParcel("P001", 5, 10, 1)
//	query, _ := NewFindLockerQuery("john.doe@gmail.com", p)
//	res, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrLockerNotFound) {
//	    // no candidate
//	}
type FindLockerQuery struct { //nolint:recvcheck //using for validation
	email  string
	parcel parcel.Parcel

	guard guard.ConstructorGuard
}

// NewFindLockerQuery creates the query.
func NewFindLockerQuery(email string, p parcel.Parcel) (FindLockerQuery, error) {
	q := FindLockerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setEmail(email),
		q.setParcel(p),
	); err != nil {
		return FindLockerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q FindLockerQuery) Validate() error {
	return q.guard.Validate(ErrFindLockerQueryIsNotConstructed)
}

// Email returns the user's email.
func (q FindLockerQuery) Email() string { return q.email }

// Parcel returns the parcel to place.
func (q FindLockerQuery) Parcel() parcel.Parcel { return q.parcel }

func (q *FindLockerQuery) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *FindLockerQuery) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	q.parcel = p
	return nil
}

// FindLockerQueryResponse is the recommended locker with its configured
// compartment counts.
type FindLockerQueryResponse struct {
	LockerID   string
	Size       string
	Small      int
	Medium     int
	Large      int
	DistanceKm float64
}
