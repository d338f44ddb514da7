package queries

import (
	"errors"
	"strings"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrLocateParcelQueryIsNotConstructed = errors.New(
	"LocateParcelQuery must be created via NewLocateParcelQuery constructor",
)

// LocateParcelQuery asks which locker a parcel was routed through. The
// parcel number is normalized by trimming surrounding whitespace and
// upper-casing it, so " p001 " finds "P001".
type LocateParcelQuery struct {
	number string
	guard  guard.ConstructorGuard
}

// NewLocateParcelQuery creates the query from a spoken or typed number.
func NewLocateParcelQuery(number string) (LocateParcelQuery, error) {
	normalized := strings.ToUpper(strings.TrimSpace(number))
	if normalized == "" {
		return LocateParcelQuery{}, errs.NewValueIsRequiredError("number")
	}

	return LocateParcelQuery{number: normalized, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q LocateParcelQuery) Validate() error {
	return q.guard.Validate(ErrLocateParcelQueryIsNotConstructed)
}

// Number returns the normalized parcel number.
func (q LocateParcelQuery) Number() string {
	return q.number
}

// LocateParcelQueryResponse answers a LocateParcelQuery. Message is the
// sentence read back to the caller.
type LocateParcelQueryResponse struct {
	ParcelID string
	LockerID string
	Found    bool
	Message  string
}
