package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthPct(t *testing.T) {
	cases := []struct {
		name      string
		cur, prev int64
		want      string
	}{
		{"both empty", 0, 0, "0"},
		{"new activity over empty prior", 5, 0, "100"},
		{"fifty percent up", 75, 50, "50"},
		{"down", 40, 50, "-20"},
		{"to zero", 0, 50, "-100"},
		{"one decimal rounding", 1, 3, "-66.7"},
		{"flat", 50, 50, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := growthPct(c.cur, c.prev)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"growthPct(%d, %d) = %s, want %s", c.cur, c.prev, got, c.want)
		})
	}
}

func TestConversionRate(t *testing.T) {
	assert.True(t, conversionRate(0, 0).IsZero(), "no views reads as zero")
	assert.True(t, conversionRate(5, 0).IsZero())
	assert.True(t, conversionRate(25, 100).Equal(decimal.NewFromInt(25)))
	assert.True(t, conversionRate(1, 3).Equal(decimal.RequireFromString("33.33")))
}

func TestAvgDaily(t *testing.T) {
	assert.True(t, avgDaily(70, 7).Equal(decimal.NewFromInt(10)))
	assert.True(t, avgDaily(10, 3).Equal(decimal.RequireFromString("3.3")))
	assert.True(t, avgDaily(0, 7).IsZero())
}
