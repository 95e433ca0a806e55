package services

import (
	"math"

	"picboard/models"
)

// AppendPosition picks the ordering key for a post appended to a pool whose
// current maximum position is maxPosition (nil for an empty pool). Taking
// the floor first keeps repeated appends from growing a fractional tail.
func AppendPosition(maxPosition *float64) float64 {
	if maxPosition == nil {
		return 1.0
	}
	return math.Floor(*maxPosition) + 1.0
}

// MovePosition computes the new ordering key for moving the item at
// oldIndex to newIndex within positions, which must be sorted ascending.
// The key is the midpoint of the destination's neighbor bounds, so no other
// row is rewritten. Repeated moves into the same slot bisect the same
// interval and can in principle run the float out of resolution; that
// degenerate case is accepted rather than renumbering the pool.
//
// Either index outside the sequence is a not-found error.
func MovePosition(positions []float64, oldIndex, newIndex int) (float64, error) {
	n := len(positions)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return 0, models.ErrorNotFound{Message: "no pool entry at that index"}
	}
	if oldIndex == newIndex {
		return positions[oldIndex], nil
	}

	var lower float64
	if newIndex < oldIndex {
		if newIndex > 0 {
			lower = positions[newIndex-1]
		}
	} else {
		lower = positions[newIndex]
	}

	var upper float64
	switch {
	case newIndex == n-1:
		upper = positions[n-1] + 2.0
	case newIndex < oldIndex:
		upper = positions[newIndex]
	default:
		upper = positions[newIndex+1]
	}

	return (lower + upper) / 2.0, nil
}
