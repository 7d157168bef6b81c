package calc

import (
	"math"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthly builds a newest first monthly series ending at the given month.
func monthly(end time.Time, values ...float64) []domain.Point {
	points := make([]domain.Point, len(values))
	for i, v := range values {
		points[i] = domain.Point{Date: end.AddDate(0, -i, 0), Value: v}
	}
	return points
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.Observation
		want  []float64
	}{
		{
			name:  "drops missing sentinel",
			input: []domain.Observation{{Value: "4.1"}, {Value: "."}, {Value: "4.0"}},
			want:  []float64{4.1, 4.0},
		},
		{
			name: "drops non numeric content",
			input: []domain.Observation{
				{Date: "2024-01-01", Value: "abc"},
				{Date: "2024-02-01", Value: ""},
				{Date: "2024-03-01", Value: "-0.25"},
				{Date: "2024-04-01", Value: "NaN"},
				{Date: "2024-05-01", Value: "1e2"},
			},
			want: []float64{-0.25, 100},
		},
		{
			name:  "empty",
			input: nil,
			want:  []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.input)

			assert.LessOrEqual(t, len(got), len(tt.input))
			values := make([]float64, 0, len(got))
			for _, p := range got {
				values = append(values, p.Value)
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestFilterKeepsDates(t *testing.T) {
	got := Filter([]domain.Observation{{Date: "2024-06-01", Value: "3.9"}, {Date: "bogus", Value: "4.0"}})

	require.Len(t, got, 2)
	assert.Equal(t, day(2024, 6, 1), got[0].Date)
	assert.True(t, got[1].Date.IsZero())
}

func TestLatestAndOffset(t *testing.T) {
	seq := Filter([]domain.Observation{{Value: "4.1"}, {Value: "."}, {Value: "4.0"}})

	assert.Equal(t, null.FloatFrom(4.1), Latest(seq))
	assert.Equal(t, null.FloatFrom(4.0), AtOffset(seq, 1))
	assert.False(t, AtOffset(seq, 2).Valid)
	assert.False(t, AtOffset(seq, -1).Valid)
	assert.False(t, Latest(nil).Valid)
}

func TestYearOverYearChange(t *testing.T) {
	t.Run("thirteen points", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 4.1, 4.1, 4.2, 4.0, 3.9, 4.0, 4.1, 4.0, 4.1, 3.9, 4.0, 4.2, 3.9)

		got := YearOverYearChange(seq)

		require.True(t, got.Valid)
		assert.InDelta(t, 5.128, got.Float64, 0.001)
	})

	t.Run("twelve points are not enough", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
		assert.False(t, YearOverYearChange(seq).Valid)
	})

	t.Run("zero base", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0)
		assert.False(t, YearOverYearChange(seq).Valid)
	})

	t.Run("offset", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 0, 110, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 100)
		got := YearOverYearChangeAt(seq, 1, MonthsPerYear)
		require.True(t, got.Valid)
		assert.InDelta(t, 10.0, got.Float64, 1e-9)
	})
}

func TestAnnualizedQuarterlyGrowth(t *testing.T) {
	seq := []domain.Point{{Value: 101}, {Value: 100}}

	got := AnnualizedQuarterlyGrowth(seq)

	require.True(t, got.Valid)
	assert.InDelta(t, 4.0, got.Float64, 1e-9)
	assert.False(t, AnnualizedQuarterlyGrowth(seq[:1]).Valid)
}

func TestSpreadAndInversion(t *testing.T) {
	spread := Spread(null.FloatFrom(4.35), null.FloatFrom(4.18))

	require.True(t, spread.Valid)
	assert.InDelta(t, 0.17, spread.Float64, 1e-9)
	assert.Equal(t, null.BoolFrom(false), Inverted(spread))

	assert.Equal(t, null.BoolFrom(true), Inverted(null.FloatFrom(-0.01)))
	assert.Equal(t, null.BoolFrom(false), Inverted(null.FloatFrom(0)))
	assert.False(t, Inverted(null.Float{}).Valid)
	assert.False(t, Spread(null.FloatFrom(4.35), null.Float{}).Valid)
}

func TestSahmRuleDelta(t *testing.T) {
	t.Run("rising unemployment", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 4.4, 4.3, 4.2, 4.1, 4.0, 3.9, 3.8, 3.7, 3.6, 3.5, 3.6, 3.7)

		got := SahmRuleDelta(seq)

		require.True(t, got.Valid)
		assert.InDelta(t, 0.8, got.Float64, 1e-9)
		assert.Equal(t, null.BoolFrom(true), SahmTriggered(got))
	})

	t.Run("flat", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4)
		got := SahmRuleDelta(seq)
		require.True(t, got.Valid)
		assert.InDelta(t, 0, got.Float64, 1e-9)
		assert.Equal(t, null.BoolFrom(false), SahmTriggered(got))
	})

	t.Run("short series", func(t *testing.T) {
		seq := monthly(day(2024, 12, 1), 4, 4, 4)
		assert.False(t, SahmRuleDelta(seq).Valid)
		assert.False(t, SahmTriggered(SahmRuleDelta(seq)).Valid)
	})
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, null.StringFrom("rising"), TrendOf([]domain.Point{{Value: 4.2}, {Value: 4.1}, {Value: 4.0}}))
	assert.Equal(t, null.StringFrom("falling"), TrendOf([]domain.Point{{Value: 3.9}, {Value: 4.1}, {Value: 4.0}}))
	assert.Equal(t, null.StringFrom("stable"), TrendOf([]domain.Point{{Value: 4.0}, {Value: 4.1}, {Value: 4.0}}))
	assert.False(t, TrendOf([]domain.Point{{Value: 4.0}}).Valid)
}

func TestFiniteAndPercentChange(t *testing.T) {
	assert.False(t, Finite(math.NaN()).Valid)
	assert.False(t, Finite(math.Inf(1)).Valid)
	assert.False(t, PercentChange(null.FloatFrom(1), null.FloatFrom(0)).Valid)
	assert.False(t, PercentChange(null.Float{}, null.FloatFrom(1)).Valid)
	assert.InDelta(t, 50.0, PercentChange(null.FloatFrom(3), null.FloatFrom(2)).Float64, 1e-9)
}

func TestRound(t *testing.T) {
	assert.Equal(t, null.FloatFrom(5.13), Round(null.FloatFrom(5.128205), 2))
	assert.Equal(t, null.FloatFrom(-0.3), Round(null.FloatFrom(-0.25), 1))
	assert.False(t, Round(null.Float{}, 2).Valid)
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean(null.FloatFrom(1), null.Float{}, null.FloatFrom(3)).Float64, 1e-9)
	assert.False(t, Mean(null.Float{}, null.Float{}).Valid)
	assert.False(t, Mean().Valid)
}

func TestNearestDateJoin(t *testing.T) {
	starts := []domain.Point{
		{Date: day(2024, 3, 1), Value: 1300},
		{Date: day(2024, 2, 1), Value: 1400},
		{Date: day(2023, 6, 1), Value: 1500},
	}
	mortgage := []domain.Point{
		{Date: day(2024, 3, 7), Value: 6.8},
		{Date: day(2024, 2, 29), Value: 6.9},
		{Date: day(2024, 2, 1), Value: 6.6},
	}

	pairs := NearestDateJoin(starts, mortgage, 45*24*time.Hour)

	require.Len(t, pairs, 2)
	assert.Equal(t, 1300.0, pairs[0].A.Value)
	assert.Equal(t, 6.9, pairs[0].B.Value)
	assert.Equal(t, 1400.0, pairs[1].A.Value)
	assert.Equal(t, 6.6, pairs[1].B.Value)
}

func TestNearestDateJoinProperties(t *testing.T) {
	tolerance := 10 * 24 * time.Hour
	a := []domain.Point{
		{Date: day(2024, 5, 10), Value: 1},
		{Date: day(2024, 4, 10), Value: 2},
		{Date: day(2024, 1, 10), Value: 3},
		{Date: time.Time{}, Value: 4},
	}
	b := []domain.Point{
		{Date: day(2024, 5, 15), Value: 10},
		{Date: day(2024, 5, 5), Value: 11},
		{Date: day(2024, 4, 12), Value: 12},
	}

	pairs := NearestDateJoin(a, b, tolerance)

	require.Len(t, pairs, 2)
	seen := map[float64]bool{}
	for _, p := range pairs {
		assert.False(t, seen[p.A.Value], "a entry paired twice")
		seen[p.A.Value] = true
		assert.LessOrEqual(t, absDuration(p.A.Date.Sub(p.B.Date)), tolerance)
	}
	// equidistant candidates resolve to the earliest index in b
	assert.Equal(t, 10.0, pairs[0].B.Value)
	assert.Equal(t, 2.0, pairs[1].A.Value)
}

func TestNearestDateJoinExact(t *testing.T) {
	tenYear := []domain.Point{{Date: day(2024, 5, 10), Value: 4.35}, {Date: day(2024, 5, 9), Value: 4.30}}
	twoYear := []domain.Point{{Date: day(2024, 5, 10), Value: 4.18}, {Date: day(2024, 5, 8), Value: 4.2}}

	pairs := NearestDateJoin(tenYear, twoYear, 0)

	require.Len(t, pairs, 1)
	assert.Equal(t, 4.18, pairs[0].B.Value)
}

func TestHistory(t *testing.T) {
	seq := monthly(day(2024, 12, 1), 3.333, 2.222, 1.111)

	got := History(seq, HistoryOptions{Points: 2, Places: 1})

	assert.Equal(t, []domain.HistoryPoint{
		{Date: "Nov 24", Value: 2.2},
		{Date: "Dec 24", Value: 3.3},
	}, got)
	assert.Equal(t, 3.333, seq[0].Value, "input must not be reordered")
}

func TestChronologicalAndRecent(t *testing.T) {
	seq := []domain.Point{{Value: 3}, {Value: 2}, {Value: 1}}

	assert.Equal(t, []domain.Point{{Value: 1}, {Value: 2}, {Value: 3}}, Chronological(seq))
	assert.Len(t, Recent(seq, 10), 3)
	assert.Len(t, Recent(seq, -1), 0)
}

func TestYoYHistory(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = float64(200 - i)
	}
	seq := monthly(day(2024, 12, 1), values...)

	got := YoYHistory(seq, 12, MonthsPerYear)

	require.Len(t, got, 3)
	assert.InDelta(t, (200.0-188.0)/188.0*100, got[0].Float64, 1e-9)
	assert.InDelta(t, (198.0-186.0)/186.0*100, got[2].Float64, 1e-9)

	// A zero year-ago value leaves a gap without shifting later offsets.
	seq[13].Value = 0
	got = YoYHistory(seq, 12, MonthsPerYear)
	require.Len(t, got, 3)
	assert.False(t, got[1].Valid)
	assert.True(t, got[2].Valid)

	assert.Nil(t, YoYHistory(seq[:12], 12, MonthsPerYear))
	assert.Nil(t, YoYHistory(seq, 12, 0))
}

func TestMonthlyPayment(t *testing.T) {
	payment := MonthlyPayment(320000, null.FloatFrom(6.5), MortgageTermMonths)
	require.True(t, payment.Valid)
	assert.InDelta(t, 2022.62, payment.Float64, 0.01)

	assert.InDelta(t, 1000.0, MonthlyPayment(360000, null.FloatFrom(0), MortgageTermMonths).Float64, 1e-9)
	assert.False(t, MonthlyPayment(320000, null.Float{}, MortgageTermMonths).Valid)
	assert.False(t, MonthlyPayment(320000, null.FloatFrom(6.5), 0).Valid)
}

func TestShareOfIncome(t *testing.T) {
	assert.InDelta(t, 30.0, ShareOfIncome(null.FloatFrom(2000), null.FloatFrom(80000)).Float64, 1e-9)
	assert.False(t, ShareOfIncome(null.FloatFrom(2000), null.FloatFrom(0)).Valid)
	assert.False(t, ShareOfIncome(null.Float{}, null.FloatFrom(80000)).Valid)
}
