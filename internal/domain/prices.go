package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

type PriceItem struct {
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Icon      string         `json:"icon"`
	Unit      string         `json:"unit"`
	Current   null.Float     `json:"current"`
	Date      null.String    `json:"date"`
	YearAgo   null.Float     `json:"yearAgo"`
	YoYChange null.Float     `json:"yoyChange"`
	History   []HistoryPoint `json:"history"`
}

type PriceOverview struct {
	AvgFoodChange null.Float `json:"avgFoodChange"`
	GasAvailable  bool       `json:"gasAvailable"`
}

// PriceSummary is the grocery and fuel price dashboard.
type PriceSummary struct {
	Timestamp time.Time     `json:"timestamp"`
	Food      []PriceItem   `json:"food"`
	Gas       []PriceItem   `json:"gas"`
	Summary   PriceOverview `json:"summary"`
}
