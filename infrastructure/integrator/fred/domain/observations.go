package domain

import "github.com/vfg2006/econ-pulse-api/internal/domain"

// ObservationsResponse is the body of series/observations.
type ObservationsResponse struct {
	RealtimeStart string               `json:"realtime_start"`
	RealtimeEnd   string               `json:"realtime_end"`
	SortOrder     string               `json:"sort_order"`
	Count         int                  `json:"count"`
	Limit         int                  `json:"limit"`
	Observations  []domain.Observation `json:"observations"`
}

// ErrorResponse is what FRED returns with a non-2xx status.
type ErrorResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}
