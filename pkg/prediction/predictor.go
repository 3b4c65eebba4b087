// Package prediction converts match scores and market trends into sales
// probability, time-to-sale, and potential value estimates.
package prediction

import (
	"github.com/Ramsey-B/fern/pkg/models"
)

// demandAdjustment is added to the probability for high demand and
// subtracted for low demand. Medium or unrecognized demand is neutral.
const demandAdjustment = 15

// Timeframe thresholds on the clamped probability (exclusive).
const (
	underOneMonthThreshold    = 80
	oneToThreeMonthsThreshold = 60
	threeToSixMonthsThreshold = 40
)

// Predictor derives sales predictions from match scores. Pure and stateless;
// callers must supply a trend (the finder substitutes the default trend for
// categories with no entry, never the predictor).
type Predictor struct{}

// NewPredictor creates a Predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Predict treats the match score as a base probability percentage, adjusts
// it for market demand, and clamps the result to [0, 100] before deriving
// the timeframe bucket and potential value.
func (p *Predictor) Predict(matchScore int, trend models.MarketTrend) models.Prediction {
	probability := matchScore

	switch trend.DemandLevel {
	case models.DemandLevelHigh:
		probability += demandAdjustment
	case models.DemandLevelLow:
		probability -= demandAdjustment
	}

	probability = clamp(probability, 0, 100)

	return models.Prediction{
		Probability:        probability,
		EstimatedTimeframe: timeframeFor(probability),
		PotentialValue:     trend.AveragePrice * float64(probability) / 100,
	}
}

// timeframeFor maps a clamped probability to its time-to-sale bucket.
func timeframeFor(probability int) models.Timeframe {
	switch {
	case probability > underOneMonthThreshold:
		return models.TimeframeUnderOneMonth
	case probability > oneToThreeMonthsThreshold:
		return models.TimeframeOneToThreeMonths
	case probability > threeToSixMonthsThreshold:
		return models.TimeframeThreeToSixMonths
	default:
		return models.TimeframeOverSixMonths
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
