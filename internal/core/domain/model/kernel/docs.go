// Package kernel provides core domain primitives shared by the parcel locker model.
//
// The package includes:
//   - City: the enumeration of cities served by the locker network
//   - Size: the SMALL/MEDIUM/LARGE compartment classes
//   - SizeCounts: a fixed three-slot record of counts indexed by Size
//   - Location: a validated latitude/longitude pair with geodesic distance
//   - UUID: a value object for generated identifiers
//
// These primitives are immutable value objects. Where a type carries a
// constructor guard, its zero value fails Validate.
package kernel
