package domain

import "time"

// FallbackBriefing is served when no narrative can be produced.
const FallbackBriefing = "Economic briefing temporarily unavailable. Please check the dashboard charts for current data."

// Briefing is the daily narrative summary of the economy dashboard.
type Briefing struct {
	ID          string    `json:"id"`
	Briefing    string    `json:"briefing"`
	Date        string    `json:"date"`
	GeneratedAt time.Time `json:"generatedAt"`
	Model       string    `json:"model,omitempty"`
	Cached      bool      `json:"cached"`
	Fallback    bool      `json:"fallback,omitempty"`
}
