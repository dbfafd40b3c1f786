// Package score holds the pure price/income scoring used on listing
// cards, roommate cards and group views.
//
// There are two scorers with different thresholds for what is
// conceptually the same rent-to-income ratio: listing affordability
// (0.25/0.40) and roommate fit ranking (0.3/0.5). The mismatch is a
// product decision carried over as-is; do not unify them.
package score

// AffordabilityTier labels a listing price against a viewer's income.
type AffordabilityTier string

const (
	AffordabilityUnknown AffordabilityTier = "unknown"
	TooExpensive         AffordabilityTier = "too_expensive"
	Recommended          AffordabilityTier = "recommended"
	Affordable           AffordabilityTier = "affordable"
)

// Affordability scores a monthly price against a yearly income. A nil
// income means the viewer has no income on file; nothing is rendered for
// the unknown tier rather than guessing.
func Affordability(price float64, yearlyIncome *float64) AffordabilityTier {
	if yearlyIncome == nil || *yearlyIncome <= 0 {
		return AffordabilityUnknown
	}
	monthly := *yearlyIncome / 12
	switch {
	case price > monthly*0.4:
		return TooExpensive
	case price <= monthly*0.25:
		return Affordable
	}
	return Recommended
}

// FitTier labels how well a roommate's income fits a listing's rent,
// shown to listing owners reviewing group members.
type FitTier string

const (
	UnknownFit FitTier = "unknown_fit"
	BadFit     FitTier = "bad_fit"
	OkayFit    FitTier = "okay_fit"
	GoodFit    FitTier = "good_fit"
)

// FitRanking is a fit tier plus the rent-to-monthly-income percentage
// behind it. Percent is nil when the income is unknown.
type FitRanking struct {
	Tier    FitTier
	Percent *float64
}

// Fit ranks a listing's rent against a roommate's yearly income using
// the 0.3 (good) and 0.5 (bad) rent-ratio boundaries.
func Fit(price float64, yearlyIncome *float64) FitRanking {
	if yearlyIncome == nil || *yearlyIncome <= 0 || price <= 0 {
		return FitRanking{Tier: UnknownFit}
	}
	monthly := *yearlyIncome / 12
	ratio := price / monthly
	percent := ratio * 100
	r := FitRanking{Percent: &percent}
	switch {
	case ratio > 0.5:
		r.Tier = BadFit
	case ratio < 0.3:
		r.Tier = GoodFit
	default:
		r.Tier = OkayFit
	}
	return r
}
