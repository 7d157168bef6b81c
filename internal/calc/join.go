package calc

import (
	"math"
	"time"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

// Pair is one aligned entry of a date join.
type Pair struct {
	A domain.Point
	B domain.Point
}

// NearestDateJoin pairs every a entry with the b entry closest in time, as
// long as the distance is within tolerance. Ties go to the earliest index in
// b. Unmatched a entries are dropped and the order of a is kept. A tolerance
// of zero is an exact date match.
func NearestDateJoin(a, b []domain.Point, tolerance time.Duration) []Pair {
	pairs := make([]Pair, 0, len(a))
	for _, left := range a {
		best := -1
		var bestDistance time.Duration

		for j, right := range b {
			distance := absDuration(left.Date.Sub(right.Date))
			if distance > tolerance {
				continue
			}
			if best == -1 || distance < bestDistance {
				best, bestDistance = j, distance
			}
		}

		if best >= 0 {
			pairs = append(pairs, Pair{A: left, B: b[best]})
		}
	}
	return pairs
}

func absDuration(d time.Duration) time.Duration {
	if d >= 0 {
		return d
	}
	if d == math.MinInt64 {
		return math.MaxInt64
	}
	return -d
}
