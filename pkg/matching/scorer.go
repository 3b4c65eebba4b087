// Package matching scores product/buyer compatibility and orchestrates match
// discovery over a catalog.
package matching

import (
	"github.com/Ramsey-B/fern/pkg/models"
)

// Point budgets per criterion. The four contributions are independent and
// non-negative, so a total score is always within [0, 100].
const (
	categoryFullPoints    = 40
	categoryPartialPoints = 20
	locationFullPoints    = 20
	locationPartialPoints = 10
	priceFullPoints       = 30
	pricePartialPoints    = 15
	quantityFullPoints    = 10
	quantityPartialPoints = 5
)

const (
	// DefaultNearbyRadiusKm is the distance under which two different
	// locations still earn partial location points.
	DefaultNearbyRadiusKm = 100.0

	// priceStretchFactor tolerates prices slightly above the buyer's maximum.
	priceStretchFactor = 1.2

	// quantityTolerance accepts quantities close to the buyer's minimum.
	quantityTolerance = 0.8
)

// Reason strings, in criterion evaluation order. Each satisfied condition
// appends exactly one of these to the result.
const (
	ReasonCategoryPreferred   = "category matches the buyer's preferred category"
	ReasonCategoryAlternative = "category is an acceptable alternative for the buyer"
	ReasonSameLocation        = "product and buyer are in the same location"
	ReasonNearbyLocation      = "locations are within reasonable delivery distance"
	ReasonPriceInRange        = "price is inside the buyer's range"
	ReasonPriceSlightlyAbove  = "price is slightly above the buyer's range"
	ReasonQuantitySufficient  = "quantity covers the buyer's minimum"
	ReasonQuantityNearMinimum = "quantity is close to the buyer's minimum"
)

// DistanceEstimator resolves named locations to a distance in kilometers.
type DistanceEstimator interface {
	Distance(a, b string) float64
}

// ScoreBreakdown is the outcome of scoring one product against one buyer.
// Reasons lists the satisfied criteria in evaluation order; an empty list
// means nothing matched and the score is zero.
type ScoreBreakdown struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Scorer computes compatibility scores between products and buyers. It is
// stateless apart from the injected distance estimator and safe for
// concurrent use.
type Scorer struct {
	distance       DistanceEstimator
	nearbyRadiusKm float64
}

// NewScorer creates a Scorer using the given distance estimator. A
// nearbyRadiusKm <= 0 falls back to DefaultNearbyRadiusKm.
func NewScorer(distance DistanceEstimator, nearbyRadiusKm float64) *Scorer {
	if nearbyRadiusKm <= 0 {
		nearbyRadiusKm = DefaultNearbyRadiusKm
	}
	return &Scorer{distance: distance, nearbyRadiusKm: nearbyRadiusKm}
}

// Score evaluates the four criteria in fixed order: category, location,
// price, quantity. For each criterion the full condition is checked before
// the partial one and at most one of the two contributes. Never fails; a
// product and buyer with nothing in common score 0 with no reasons.
func (s *Scorer) Score(product models.Product, buyer models.Buyer) ScoreBreakdown {
	score := 0
	reasons := make([]string, 0, 4)

	// Category
	if product.Category == buyer.PreferredCategory {
		score += categoryFullPoints
		reasons = append(reasons, ReasonCategoryPreferred)
	} else if buyer.AcceptsAlternative(product.Category) {
		score += categoryPartialPoints
		reasons = append(reasons, ReasonCategoryAlternative)
	}

	// Location
	if product.Location == buyer.Location {
		score += locationFullPoints
		reasons = append(reasons, ReasonSameLocation)
	} else if s.distance.Distance(product.Location, buyer.Location) < s.nearbyRadiusKm {
		score += locationPartialPoints
		reasons = append(reasons, ReasonNearbyLocation)
	}

	// Price
	if product.Price >= buyer.MinPrice && product.Price <= buyer.MaxPrice {
		score += priceFullPoints
		reasons = append(reasons, ReasonPriceInRange)
	} else if product.Price <= buyer.MaxPrice*priceStretchFactor {
		score += pricePartialPoints
		reasons = append(reasons, ReasonPriceSlightlyAbove)
	}

	// Quantity
	if product.Quantity >= buyer.MinQuantity {
		score += quantityFullPoints
		reasons = append(reasons, ReasonQuantitySufficient)
	} else if product.Quantity >= buyer.MinQuantity*quantityTolerance {
		score += quantityPartialPoints
		reasons = append(reasons, ReasonQuantityNearMinimum)
	}

	return ScoreBreakdown{Score: score, Reasons: reasons}
}
