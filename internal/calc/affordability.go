package calc

import (
	"math"

	"github.com/guregu/null/v6"
)

const MortgageTermMonths = 360

// MonthlyPayment is the fixed payment that amortises principal over months
// at an annual percentage rate, compounded monthly.
func MonthlyPayment(principal float64, annualRatePct null.Float, months int) null.Float {
	if !annualRatePct.Valid || months <= 0 || principal < 0 {
		return null.Float{}
	}

	r := annualRatePct.Float64 / 100 / MonthsPerYear
	if r == 0 {
		return Finite(principal / float64(months))
	}
	return Finite(principal * r / (1 - math.Pow(1+r, -float64(months))))
}

// ShareOfIncome is a monthly cost annualised as a percentage of a yearly
// income. A zero income is unavailable.
func ShareOfIncome(monthly, annualIncome null.Float) null.Float {
	if !monthly.Valid || !annualIncome.Valid || annualIncome.Float64 == 0 {
		return null.Float{}
	}
	return Finite(monthly.Float64 * MonthsPerYear / annualIncome.Float64 * 100)
}
