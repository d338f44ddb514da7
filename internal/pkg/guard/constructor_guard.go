package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was built by its constructor.
// The zero value reports "not constructed".
//
// Example usage:
//
//	type Parcel struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guard was created by NewConstructorGuard.
//
// Parameters:
//   - validationError: the error to return for a zero-value guard; nil
//     selects ErrDefaultConstructorGuard
//
// Returns:
//   - error: nil for a constructed guard, validationError otherwise
//
// Example:
//
//	var p Parcel // not built by NewParcel
//	err := p.guard.Validate(ErrParcelIsNotConstructed) // ErrParcelIsNotConstructed
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
