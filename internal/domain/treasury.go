package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// Fiscal Data records, decoded once at the fetch boundary. Every amount comes
// over the wire as a string and may be the literal "null".

type DebtToPenny struct {
	RecordDate       string    `json:"record_date"`
	TotalPublicDebt  FlexFloat `json:"tot_pub_debt_out_amt"`
	DebtHeldByPublic FlexFloat `json:"debt_held_public_amt"`
	IntragovHoldings FlexFloat `json:"intragov_hold_amt"`
}

type DebtOutstanding struct {
	RecordDate      string    `json:"record_date"`
	DebtOutstanding FlexFloat `json:"debt_outstanding_amt"`
}

type AverageInterestRate struct {
	RecordDate       string    `json:"record_date"`
	SecurityTypeDesc string    `json:"security_type_desc"`
	SecurityDesc     string    `json:"security_desc"`
	AvgInterestRate  FlexFloat `json:"avg_interest_rate_amt"`
}

type Auction struct {
	RecordDate     string    `json:"record_date"`
	SecurityType   string    `json:"security_type"`
	SecurityTerm   string    `json:"security_term"`
	AuctionDate    string    `json:"auction_date"`
	IssueDate      string    `json:"issue_date"`
	OfferingAmount FlexFloat `json:"offering_amt"`
}

// Figure pairs a raw value with its display rendering.
type Figure struct {
	Value     null.Float  `json:"value"`
	Formatted null.String `json:"formatted"`
}

type TotalDebt struct {
	Value           null.Float  `json:"value"`
	Formatted       null.String `json:"formatted"`
	Change          null.Float  `json:"change"`
	ChangeFormatted null.String `json:"changeFormatted"`
	Date            null.String `json:"date"`
}

type TreasuryHeadlines struct {
	TotalDebt       TotalDebt `json:"totalDebt"`
	DebtToGDP       Figure    `json:"debtToGDP"`
	AnnualInterest  Figure    `json:"annualInterest"`
	AvgInterestRate Figure    `json:"avgInterestRate"`
}

type DebtComponent struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

type InterestRate struct {
	Type string  `json:"type"`
	Rate float64 `json:"rate"`
}

type UpcomingAuction struct {
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Term      string  `json:"term"`
	Amount    string  `json:"amount"`
	RawAmount float64 `json:"rawAmount"`
}

// TreasurySummary is the federal debt dashboard.
type TreasurySummary struct {
	Timestamp         time.Time         `json:"timestamp"`
	Summary           TreasuryHeadlines `json:"summary"`
	DebtHistory       []HistoryPoint    `json:"debtHistory"`
	AnnualDebtHistory []HistoryPoint    `json:"annualDebtHistory"`
	DebtByType        []DebtComponent   `json:"debtByType"`
	InterestRates     []InterestRate    `json:"interestRates"`
	UpcomingAuctions  []UpcomingAuction `json:"upcomingAuctions"`
}
