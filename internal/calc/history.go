package calc

import (
	"slices"
	"time"

	"github.com/guregu/null/v6"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

// Chronological returns an oldest first copy of a newest first sequence.
func Chronological(seq []domain.Point) []domain.Point {
	out := slices.Clone(seq)
	slices.Reverse(out)
	return out
}

// Recent returns at most the n newest points.
func Recent(seq []domain.Point, n int) []domain.Point {
	if n < 0 {
		n = 0
	}
	return seq[:min(n, len(seq))]
}

// HistoryOptions shapes a chart series.
type HistoryOptions struct {
	Points int
	Label  func(time.Time) string
	Scale  float64
	Places int32
}

// History renders the newest opts.Points values oldest first, labelled and
// rounded for charting.
func History(seq []domain.Point, opts HistoryOptions) []domain.HistoryPoint {
	label := opts.Label
	if label == nil {
		label = utils.ShortMonthLabel
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	recent := Chronological(Recent(seq, opts.Points))
	out := make([]domain.HistoryPoint, 0, len(recent))
	for _, p := range recent {
		out = append(out, domain.HistoryPoint{
			Date:  label(p.Date),
			Value: utils.RoundTo(p.Value*scale, opts.Places),
		})
	}
	return out
}

// YoYHistory returns the year over year change at each of the first n
// offsets, newest first, so index i lines up with seq[i]. Offsets without a
// valid comparison are unavailable.
func YoYHistory(seq []domain.Point, n, lag int) []null.Float {
	n = min(n, len(seq)-lag)
	if n <= 0 || lag <= 0 {
		return nil
	}

	out := make([]null.Float, n)
	for i := range out {
		out[i] = YearOverYearChangeAt(seq, i, lag)
	}
	return out
}
