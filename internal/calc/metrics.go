package calc

import (
	"math"

	"github.com/guregu/null/v6"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const (
	MonthsPerYear   = 12
	WeeksPerYear    = 52
	QuartersPerYear = 4

	// SahmThreshold is the delta at which the Sahm rule signals a recession.
	SahmThreshold = 0.5

	sahmShortWindow = 3
	sahmLongWindow  = 12
)

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// Finite wraps v, mapping NaN and infinities to unavailable.
func Finite(v float64) null.Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// Latest is the newest value of seq.
func Latest(seq []domain.Point) null.Float {
	return AtOffset(seq, 0)
}

// AtOffset is the value k steps back from the newest one.
func AtOffset(seq []domain.Point, k int) null.Float {
	if k < 0 || len(seq) < k+1 {
		return null.Float{}
	}
	return Finite(seq[k].Value)
}

// PercentChange is (current-previous)/previous*100. A zero base is unavailable.
func PercentChange(current, previous null.Float) null.Float {
	if !current.Valid || !previous.Valid || previous.Float64 == 0 {
		return null.Float{}
	}
	return Finite((current.Float64 - previous.Float64) / previous.Float64 * 100)
}

// Delta is a-b.
func Delta(a, b null.Float) null.Float {
	if !a.Valid || !b.Valid {
		return null.Float{}
	}
	return Finite(a.Float64 - b.Float64)
}

// Scale multiplies an available value by factor.
func Scale(v null.Float, factor float64) null.Float {
	if !v.Valid {
		return null.Float{}
	}
	return Finite(v.Float64 * factor)
}

// Round rounds an available value half away from zero.
func Round(v null.Float, places int32) null.Float {
	if !v.Valid {
		return null.Float{}
	}
	return Finite(utils.RoundTo(v.Float64, places))
}

// YearOverYearChange compares the newest value of a monthly series with the
// value twelve observations back. It needs at least 13 points.
func YearOverYearChange(seq []domain.Point) null.Float {
	return YearOverYearChangeAt(seq, 0, MonthsPerYear)
}

// YearOverYearChangeAt compares seq[offset] with seq[offset+lag].
func YearOverYearChangeAt(seq []domain.Point, offset, lag int) null.Float {
	if offset < 0 || lag <= 0 || len(seq) < offset+lag+1 {
		return null.Float{}
	}
	return PercentChange(AtOffset(seq, offset), AtOffset(seq, offset+lag))
}

// AnnualizedQuarterlyGrowth is the quarter over quarter change times four.
// This is the linear approximation, not the compounded SAAR.
func AnnualizedQuarterlyGrowth(seq []domain.Point) null.Float {
	return Scale(PercentChange(AtOffset(seq, 0), AtOffset(seq, 1)), QuartersPerYear)
}

// SahmRuleDelta is the three month average unemployment minus the minimum of
// the last twelve months. Unavailable with fewer than twelve points.
func SahmRuleDelta(seq []domain.Point) null.Float {
	if len(seq) < sahmLongWindow {
		return null.Float{}
	}

	var sum float64
	for _, p := range seq[:sahmShortWindow] {
		sum += p.Value
	}

	lowest := seq[0].Value
	for _, p := range seq[:sahmLongWindow] {
		lowest = math.Min(lowest, p.Value)
	}

	return Finite(sum/sahmShortWindow - lowest)
}

// SahmTriggered reports whether delta crossed SahmThreshold.
func SahmTriggered(delta null.Float) null.Bool {
	if !delta.Valid {
		return null.Bool{}
	}
	return null.BoolFrom(delta.Float64 >= SahmThreshold)
}

// Spread is long minus short, e.g. the 10Y-2Y treasury spread.
func Spread(long, short null.Float) null.Float {
	return Delta(long, short)
}

// Inverted is true iff the spread is strictly negative.
func Inverted(spread null.Float) null.Bool {
	if !spread.Valid {
		return null.Bool{}
	}
	return null.BoolFrom(spread.Float64 < 0)
}

// TrendOf compares the newest value with the one two observations back.
func TrendOf(seq []domain.Point) null.String {
	current, earlier := AtOffset(seq, 0), AtOffset(seq, 2)
	if !current.Valid || !earlier.Valid {
		return null.String{}
	}

	switch {
	case current.Float64 > earlier.Float64:
		return null.StringFrom(string(TrendRising))
	case current.Float64 < earlier.Float64:
		return null.StringFrom(string(TrendFalling))
	default:
		return null.StringFrom(string(TrendStable))
	}
}

// Mean averages the available values. Unavailable when none are.
func Mean(values ...null.Float) null.Float {
	var sum float64
	var n int
	for _, v := range values {
		if v.Valid {
			sum += v.Float64
			n++
		}
	}
	if n == 0 {
		return null.Float{}
	}
	return Finite(sum / float64(n))
}
