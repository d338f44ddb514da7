package kernel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Size is a locker compartment class. Parcels are bucketed into a Size from
// their dimensions and lockers advertise free compartments per Size.
type Size int

const (
	// UnknownSize is the zero value and never valid.
	UnknownSize Size = iota
	Small
	Medium
	Large
)

// SizeCount is the number of valid sizes.
const SizeCount = 3

func getSizeStrings() map[Size]string {
	return map[Size]string{
		Small:  "small",
		Medium: "medium",
		Large:  "large",
	}
}

// Sizes returns the valid sizes in ascending order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// ParseSize resolves the lower-case record key ("small", "medium", "large").
func ParseSize(s string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size", s))
}

// Validate reports whether s is Small, Medium or Large.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// Index maps a valid size onto [0, SizeCount). It returns -1 for invalid sizes.
func (s Size) Index() int {
	if s.Validate() != nil {
		return -1
	}
	return int(s) - 1
}

// String returns the record key of the size, or "unknown".
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
