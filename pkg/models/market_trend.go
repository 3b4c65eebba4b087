package models

// DemandLevel is the market demand signal for a category.
type DemandLevel string

const (
	DemandLevelHigh   DemandLevel = "high"
	DemandLevelMedium DemandLevel = "medium"
	DemandLevelLow    DemandLevel = "low"
)

// MarketTrend is the per-category market snapshot consumed by the sales
// predictor. GrowthRate is informational only; the current prediction does
// not consume it.
type MarketTrend struct {
	DemandLevel  DemandLevel `json:"demand_level"`
	AveragePrice float64     `json:"average_price"`
	GrowthRate   float64     `json:"growth_rate"`
}

// DefaultMarketTrend is the documented fallback for categories with no trend
// entry. Substituting it is the match finder's responsibility; the predictor
// never sees an absent trend.
func DefaultMarketTrend() MarketTrend {
	return MarketTrend{
		DemandLevel:  DemandLevelMedium,
		AveragePrice: 30,
		GrowthRate:   0,
	}
}
