// Package delivery contains the Delivery entity linking a parcel, a locker
// and two users. References are plain identifiers; they are resolved, and
// dropped when broken, by the aggregation layers.
package delivery
