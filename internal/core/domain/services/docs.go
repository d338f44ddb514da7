// Package services provides domain services that compute over a snapshot of
// all four entity kinds at once: capacity usage, size popularity, the most
// active parties and the longest delivery, and the nearest-locker search used
// to recommend where a parcel should be sent.
//
// The package includes:
//   - Analytics: an immutable snapshot of users, parcels, lockers and deliveries
//   - Usage: an explicit, resettable per-locker and per-size usage counter
//
// Every ordering-sensitive operation is deterministic. Lockers are visited in
// ascending identifier order and ranking ties are broken on the email address.
package services
