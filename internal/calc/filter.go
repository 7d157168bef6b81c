package calc

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

// Filter keeps the observations whose value is a well formed decimal, in
// their original order. The "." sentinel and anything non-numeric is dropped.
// Dates are parsed leniently: an unreadable date becomes the zero time.
func Filter(observations []domain.Observation) []domain.Point {
	points := make([]domain.Point, 0, len(observations))
	for _, obs := range observations {
		value, ok := ParseValue(obs.Value)
		if !ok {
			continue
		}

		date, _ := utils.ParseDate(obs.Date)
		points = append(points, domain.Point{Date: date, Value: value})
	}
	return points
}

// ParseValue parses a raw observation value.
func ParseValue(raw string) (float64, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || text == domain.MissingValue {
		return 0, false
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, false
	}

	value := d.InexactFloat64()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
