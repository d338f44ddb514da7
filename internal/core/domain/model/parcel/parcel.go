package parcel

import (
	"errors"
	"fmt"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// Classification thresholds. Both bounds of a class are inclusive.
const (
	SmallMaxHeight  = 10
	SmallMaxLength  = 20
	MediumMaxHeight = 30
	MediumMaxLength = 50
)

// ErrParcelIsNotConstructed is returned when a zero-value Parcel is used.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is a physical package identified by its parcel ID.
// Height, length and weight are positive integers.
type Parcel struct {
	id     string
	height int
	length int
	weight int
	guard  guard.ConstructorGuard
}

// NewParcel creates a Parcel, rejecting a blank ID and non-positive dimensions.
//
// Parameters:
//   - id: the parcel identifier, must not be blank
//   - height, length: dimensions that drive Size, must be greater than 0
//   - weight: must be greater than 0, not used for classification
//
// Returns:
//   - Parcel: a valid parcel
//   - error: errs.ValueIsRequiredError for a blank id and
//     errs.ValueIsInvalidError for each bad dimension, joined together
//
// Example:
//
//	p, err := parcel.NewParcel("P001", 5, 10, 1)
//	if err != nil {
//	    return err
//	}
//	p.Size() // kernel.Small
func NewParcel(id string, height, length, weight int) (Parcel, error) {
	p := Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDimension("height", &p.height, height),
		p.setDimension("length", &p.length, length),
		p.setDimension("weight", &p.weight, weight),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate checks that the Parcel was built by NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel identifier.
func (p Parcel) ID() string { return p.id }

// Height returns the parcel height.
func (p Parcel) Height() int { return p.height }

// Length returns the parcel length.
func (p Parcel) Length() int { return p.length }

// Weight returns the parcel weight.
func (p Parcel) Weight() int { return p.weight }

// Size classifies the parcel into a compartment class:
//
//	height <= 10 && length <= 20  -> Small
//	height <= 30 && length <= 50  -> Medium
//	otherwise                     -> Large
//
// Weight does not take part in the classification.
func (p Parcel) Size() kernel.Size {
	switch {
	case p.height <= SmallMaxHeight && p.length <= SmallMaxLength:
		return kernel.Small
	case p.height <= MediumMaxHeight && p.length <= MediumMaxLength:
		return kernel.Medium
	default:
		return kernel.Large
	}
}

func (p *Parcel) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("parcel_id")
	}
	p.id = id
	return nil
}

func (p *Parcel) setDimension(name string, field *int, value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", value))
	}
	*field = value
	return nil
}
