// Package parcel contains the Parcel entity and its size classification
// into locker compartment classes.
package parcel
