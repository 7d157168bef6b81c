package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// Headline is a single indicator card: current value plus change.
type Headline struct {
	Value  null.Float `json:"value"`
	Change null.Float `json:"change"`
	Unit   string     `json:"unit"`
	Label  string     `json:"label"`
	Period string     `json:"period,omitempty"`
}

type EconomyHeadlines struct {
	GDP          Headline `json:"gdp"`
	Unemployment Headline `json:"unemployment"`
	Inflation    Headline `json:"inflation"`
	FedFunds     Headline `json:"fedFunds"`
}

type InflationPoint struct {
	Date string  `json:"date"`
	CPI  float64 `json:"cpi"`
	PCE  float64 `json:"pce"`
}

type YieldPoint struct {
	Maturity string  `json:"maturity"`
	Yield    float64 `json:"yield"`
}

type SpreadPoint struct {
	Date   string  `json:"date"`
	Spread float64 `json:"spread"`
}

type HousingPoint struct {
	Date     string  `json:"date"`
	Starts   float64 `json:"starts"`
	Mortgage float64 `json:"mortgage"`
}

type LaborMarket struct {
	Jolts         null.Float `json:"jolts"`
	Quits         null.Float `json:"quits"`
	Hires         null.Float `json:"hires"`
	Participation null.Float `json:"participation"`
}

type RecessionIndicators struct {
	SahmRule          null.Float  `json:"sahmRule"`
	SahmTriggered     null.Bool   `json:"sahmTriggered"`
	YieldInversion    null.Bool   `json:"yieldInversion"`
	CurrentSpread     null.Float  `json:"currentSpread"`
	UnemploymentTrend null.String `json:"unemploymentTrend"`
}

type ConsumerSentiment struct {
	Current null.Float     `json:"current"`
	Prior   null.Float     `json:"prior"`
	Change  null.Float     `json:"change"`
	History []HistoryPoint `json:"history"`
}

// EconomicSummary is the payload of the main economy dashboard.
type EconomicSummary struct {
	Timestamp           time.Time           `json:"timestamp"`
	Summary             EconomyHeadlines    `json:"summary"`
	GDPHistory          []HistoryPoint      `json:"gdpHistory"`
	UnemploymentHistory []HistoryPoint      `json:"unemploymentHistory"`
	InflationHistory    []InflationPoint    `json:"inflationHistory"`
	YieldCurve          []YieldPoint        `json:"yieldCurve"`
	YieldSpreadHistory  []SpreadPoint       `json:"yieldSpreadHistory"`
	HousingData         []HousingPoint      `json:"housingData"`
	LaborMarket         LaborMarket         `json:"laborMarket"`
	RecessionIndicators RecessionIndicators `json:"recessionIndicators"`
	Mortgage30          null.Float          `json:"mortgage30"`
	CPICurrent          null.Float          `json:"cpiCurrent"`
	CPIJan2020          float64             `json:"cpiJan2020"`
	ConsumerSentiment   ConsumerSentiment   `json:"consumerSentiment"`
}
