package inquiry

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// responseRate is responded/total as a percentage, two decimals.
// No inquiries in the window means 0, not NaN.
func responseRate(responded, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(responded).
		Div(decimal.NewFromInt(total)).
		Mul(hundred).
		Round(2)
}

// avgResponseMinutes converts the SQL average (hours) to whole minutes.
func avgResponseMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}
