// Package locker contains the Locker entity.
//
// A locker's compartments describe its static configured capacity per size
// class. Occupancy is never stored on the locker; it is derived by replaying
// deliveries against the configured capacity.
package locker
