package elementary

import (
	"fmt"
	"strings"
)

// Neighborhood is the number of cells that determine a cell's next state.
// It is fixed for the lifetime of an Engine.
type Neighborhood int

const (
	// Neighborhood3 looks at a cell and one neighbour on each side (8 patterns).
	Neighborhood3 Neighborhood = 3
	// Neighborhood5 looks at a cell and two neighbours on each side (32 patterns).
	Neighborhood5 Neighborhood = 5
)

// Valid reports whether n is a supported neighbourhood width.
func (n Neighborhood) Valid() bool {
	return n == Neighborhood3 || n == Neighborhood5
}

// Patterns returns the number of distinct neighbourhood patterns, 2^n.
func (n Neighborhood) Patterns() int { return 1 << uint(n) }

// Radius is the number of neighbours on each side of the centre cell.
func (n Neighborhood) Radius() int { return (int(n) - 1) / 2 }

// MaxRule returns the largest rule number accepted for n.
func (n Neighborhood) MaxRule() int64 {
	switch n {
	case Neighborhood3:
		return MaxRule3
	case Neighborhood5:
		return MaxRule5
	}
	return -1
}

func (n Neighborhood) String() string {
	return fmt.Sprintf("%d-cell", int(n))
}

// ParseNeighborhood accepts a neighbourhood width ("3", "5") or the size of the
// rule table it implies ("8", "32", "8-bit", "32-bit").
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3", "3-cell", "8", "8-bit", "8bit":
		return Neighborhood3, nil
	case "5", "5-cell", "32", "32-bit", "32bit":
		return Neighborhood5, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNeighborhood, s)
}
