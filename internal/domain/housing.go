package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// Bedroom counts in the order HUD publishes fair market rents.
var BedroomLabels = [5]string{"efficiency", "oneBedroom", "twoBedroom", "threeBedroom", "fourBedroom"}

// FairMarketRent is the normalized HUD FMR record for a zip code.
type FairMarketRent struct {
	Zip        string        `json:"zip"`
	CountyName string        `json:"countyName"`
	MetroName  string        `json:"metroName"`
	Year       string        `json:"year"`
	Rents      [5]null.Float `json:"rents"`
	SmallArea  bool          `json:"smallArea"`
}

// TwoBedroom is the reference unit used by affordability ratios.
func (f FairMarketRent) TwoBedroom() null.Float {
	return f.Rents[2]
}

// IncomeLimits holds HUD income thresholds by household size (index 0 is a
// single person household).
type IncomeLimits struct {
	Zip          string        `json:"zip"`
	Year         string        `json:"year"`
	MedianIncome null.Float    `json:"medianIncome"`
	VeryLow      [8]null.Float `json:"veryLow"`
	ExtremelyLow [8]null.Float `json:"extremelyLow"`
	Low          [8]null.Float `json:"low"`
}

type Affordability struct {
	RentToIncome    null.Float `json:"rentToIncome"`
	ReferencePrice  float64    `json:"referencePrice"`
	MonthlyPayment  null.Float `json:"monthlyPayment"`
	PaymentToIncome null.Float `json:"paymentToIncome"`
}

// HousingSummary is the housing dashboard. Local fields are nil when no zip
// was requested or HUD had nothing for it.
type HousingSummary struct {
	Timestamp     time.Time       `json:"timestamp"`
	Zip           string          `json:"zip,omitempty"`
	Mortgage30    null.Float      `json:"mortgage30"`
	Mortgage15    null.Float      `json:"mortgage15"`
	MortgageDate  null.String     `json:"mortgageDate"`
	Mortgage30YoY null.Float      `json:"mortgage30Change"`
	FMR           *FairMarketRent `json:"fmr"`
	IncomeLimits  *IncomeLimits   `json:"incomeLimits"`
	Affordability *Affordability  `json:"affordability"`
}
