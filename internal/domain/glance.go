package domain

import "time"

type GlanceEconomy struct {
	GDP          Headline `json:"gdp"`
	Unemployment Headline `json:"unemployment"`
	Inflation    Headline `json:"inflation"`
	FedRate      Headline `json:"fedRate"`
}

// GlanceConsumer groups the kitchen-table indicators. Gas is nil when the
// fuel price source is not configured or returned nothing.
type GlanceConsumer struct {
	Sentiment Headline  `json:"sentiment"`
	Gas       *Headline `json:"gas"`
	Food      Headline  `json:"food"`
	Mortgage  Headline  `json:"mortgage"`
}

// GlanceSummary is the compact at-a-glance dashboard.
type GlanceSummary struct {
	Timestamp time.Time      `json:"timestamp"`
	Economy   GlanceEconomy  `json:"economy"`
	Consumer  GlanceConsumer `json:"consumer"`
}
