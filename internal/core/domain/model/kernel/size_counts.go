package kernel

import (
	"errors"
	"math"

	"parcellocker/internal/pkg/errs"
)

// SizeCounts is a fixed record holding one non-negative count per Size.
// Lockers use it for their configured compartments.
type SizeCounts struct {
	counts [SizeCount]int
}

// NewSizeCounts builds a SizeCounts. Every count must be zero or greater.
//
// Example:
//
//	compartments, err := kernel.NewSizeCounts(20, 15, 5)
//	compartments.Of(kernel.Medium) // 15
func NewSizeCounts(small, medium, large int) (SizeCounts, error) {
	var c SizeCounts
	if err := errors.Join(
		c.set(Small, small),
		c.set(Medium, medium),
		c.set(Large, large),
	); err != nil {
		return SizeCounts{}, err
	}
	return c, nil
}

// Of returns the count stored for s. Invalid sizes yield 0.
func (c SizeCounts) Of(s Size) int {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return c.counts[i]
}

// Has reports whether at least one slot of size s is counted.
func (c SizeCounts) Has(s Size) bool {
	return c.Of(s) > 0
}

// Small returns the count for Small.
func (c SizeCounts) Small() int { return c.counts[0] }

// Medium returns the count for Medium.
func (c SizeCounts) Medium() int { return c.counts[1] }

// Large returns the count for Large.
func (c SizeCounts) Large() int { return c.counts[2] }

func (c *SizeCounts) set(s Size, n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError(s.String(), n, 0, math.MaxInt)
	}
	c.counts[s.Index()] = n
	return nil
}
