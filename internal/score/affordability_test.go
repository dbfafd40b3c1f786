package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func income(v float64) *float64 { return &v }

func TestAffordability(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		income *float64
		want   AffordabilityTier
	}{
		{"no income on profile", 1200, nil, AffordabilityUnknown},
		{"zero income", 1200, income(0), AffordabilityUnknown},
		{"negative income", 1200, income(-1), AffordabilityUnknown},
		{"quarter of monthly income", 1200, income(60000), Affordable},
		{"between the thresholds", 1500, income(60000), Recommended},
		{"over forty percent", 2100, income(60000), TooExpensive},
		{"exactly the affordable bound", 1250, income(60000), Affordable},
		{"exactly the expensive bound", 2000, income(60000), Recommended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Affordability(tt.price, tt.income))
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		income  *float64
		want    FitTier
		percent float64
	}{
		{"well under budget", 1200, income(60000), GoodFit, 24},
		{"middle of the band", 1750, income(60000), OkayFit, 35},
		{"over half of income", 2750, income(60000), BadFit, 55},
		{"exactly the good bound", 1500, income(60000), OkayFit, 30},
		{"exactly the bad bound", 2500, income(60000), OkayFit, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.price, tt.income)
			assert.Equal(t, tt.want, got.Tier)
			if assert.NotNil(t, got.Percent) {
				assert.InDelta(t, tt.percent, *got.Percent, 0.01)
			}
		})
	}
}

func TestFitWithoutIncome(t *testing.T) {
	got := Fit(1200, nil)
	assert.Equal(t, UnknownFit, got.Tier)
	assert.Nil(t, got.Percent)
}

// The two scorers keep separate thresholds. The same price can be
// Recommended on a listing card while ranking as only an okay fit.
func TestScorersKeepSeparateThresholds(t *testing.T) {
	price, inc := 1900.0, income(60000)
	assert.Equal(t, Recommended, Affordability(price, inc))
	assert.Equal(t, OkayFit, Fit(price, inc).Tier)
}
