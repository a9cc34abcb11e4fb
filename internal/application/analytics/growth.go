package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// growthPct is the percentage change of cur over prev, one decimal.
// A zero prior window reads as +100% when there is any current activity
// (new business, everything is growth) and 0 when both windows are empty.
func growthPct(cur, prev int64) decimal.Decimal {
	if prev == 0 {
		if cur > 0 {
			return hundred
		}
		return decimal.Zero
	}
	return decimal.NewFromInt(cur - prev).
		Div(decimal.NewFromInt(prev)).
		Mul(hundred).
		Round(1)
}

// conversionRate is contacts/views as a percentage, two decimals.
// No views means 0, not a division error.
func conversionRate(contacts, views int64) decimal.Decimal {
	if views == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(contacts).
		Div(decimal.NewFromInt(views)).
		Mul(hundred).
		Round(2)
}

// avgDaily is total/days, one decimal.
func avgDaily(total int64, days int) decimal.Decimal {
	if days == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(days))).
		Round(1)
}
