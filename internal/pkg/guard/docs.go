// Package guard provides ConstructorGuard, a marker embedded in value objects
// so that zero values created outside their constructors fail validation.
package guard
