package domain

import "time"

// MissingValue is the sentinel FRED uses for a period without data.
const MissingValue = "."

// Observation is one raw sample as returned by a series endpoint. The value
// is kept as text until the filter decides whether it is numeric.
type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// Point is a filtered observation. Sequences of points are newest first
// unless stated otherwise.
type Point struct {
	Date  time.Time
	Value float64
}

// HistoryPoint is one entry of a chronological (oldest first) chart series.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
