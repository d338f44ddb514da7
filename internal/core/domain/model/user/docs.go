// Package user contains the User entity: a registered sender or receiver
// identified by email and placed at a geographic location.
package user
