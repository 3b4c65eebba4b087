package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/catalog"
	"github.com/Ramsey-B/fern/pkg/geo"
	"github.com/Ramsey-B/fern/pkg/models"
)

// fixedDistance always reports the same distance between distinct locations.
type fixedDistance float64

func (d fixedDistance) Distance(a, b string) float64 {
	if a == b {
		return 0
	}
	return float64(d)
}

func baseProduct() models.Product {
	return models.Product{
		ID:       1,
		Name:     "Stainless steel 304",
		Category: models.CategoryRawMaterials,
		Price:    50,
		Quantity: 250,
		Location: "Lyon",
		Status:   models.StockStatusSurplus,
	}
}

func baseBuyer() models.Buyer {
	return models.Buyer{
		ID:                1,
		Name:              "Enterprise SA",
		PreferredCategory: models.CategoryRawMaterials,
		MinPrice:          20,
		MaxPrice:          60,
		MinQuantity:       100,
		Location:          "Lyon",
	}
}

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer(geo.NewDefaultEstimator(), 0)

	t.Run("all criteria satisfied scores 100", func(t *testing.T) {
		result := scorer.Score(baseProduct(), baseBuyer())

		assert.Equal(t, 100, result.Score)
		assert.Equal(t, []string{
			ReasonCategoryPreferred,
			ReasonSameLocation,
			ReasonPriceInRange,
			ReasonQuantitySufficient,
		}, result.Reasons)
	})

	t.Run("nothing in common scores zero", func(t *testing.T) {
		buyer := baseBuyer()
		buyer.PreferredCategory = models.CategoryElectronics
		buyer.MinPrice = 1
		buyer.MaxPrice = 2
		buyer.MinQuantity = 10_000
		buyer.Location = "Lille"

		result := scorer.Score(baseProduct(), buyer)

		assert.Zero(t, result.Score)
		assert.Empty(t, result.Reasons)
	})

	t.Run("alternative category earns half points", func(t *testing.T) {
		buyer := baseBuyer()
		buyer.PreferredCategory = models.CategoryPackaging
		buyer.AlternativeCategories = []models.Category{models.CategoryRawMaterials}

		result := scorer.Score(baseProduct(), buyer)

		assert.Equal(t, 80, result.Score)
		assert.Contains(t, result.Reasons, ReasonCategoryAlternative)
		assert.NotContains(t, result.Reasons, ReasonCategoryPreferred)
	})

	t.Run("price slightly above range earns half points", func(t *testing.T) {
		product := baseProduct()
		product.Price = 66 // within 60 * 1.2

		result := scorer.Score(product, baseBuyer())

		assert.Equal(t, 85, result.Score)
		assert.Contains(t, result.Reasons, ReasonPriceSlightlyAbove)
	})

	t.Run("price beyond the stretch earns nothing", func(t *testing.T) {
		product := baseProduct()
		product.Price = 73 // above 60 * 1.2

		result := scorer.Score(product, baseBuyer())

		assert.Equal(t, 70, result.Score)
		assert.NotContains(t, result.Reasons, ReasonPriceInRange)
		assert.NotContains(t, result.Reasons, ReasonPriceSlightlyAbove)
	})

	t.Run("quantity near the minimum earns half points", func(t *testing.T) {
		product := baseProduct()
		product.Quantity = 85 // within 100 * 0.8

		result := scorer.Score(product, baseBuyer())

		assert.Equal(t, 95, result.Score)
		assert.Contains(t, result.Reasons, ReasonQuantityNearMinimum)
	})

	t.Run("quantity below the tolerance earns nothing", func(t *testing.T) {
		product := baseProduct()
		product.Quantity = 79 // below 100 * 0.8

		result := scorer.Score(product, baseBuyer())

		assert.Equal(t, 90, result.Score)
		assert.NotContains(t, result.Reasons, ReasonQuantitySufficient)
		assert.NotContains(t, result.Reasons, ReasonQuantityNearMinimum)
	})

	t.Run("boundary values count as satisfied", func(t *testing.T) {
		product := baseProduct()
		product.Price = 72    // exactly 60 * 1.2
		product.Quantity = 80 // exactly 100 * 0.8

		result := scorer.Score(product, baseBuyer())

		assert.Contains(t, result.Reasons, ReasonPriceSlightlyAbove)
		assert.Contains(t, result.Reasons, ReasonQuantityNearMinimum)
	})
}

func TestScorer_Score_Location(t *testing.T) {
	t.Run("nearby locations earn half points", func(t *testing.T) {
		scorer := NewScorer(fixedDistance(50), 0)
		buyer := baseBuyer()
		buyer.Location = "Villeurbanne"

		result := scorer.Score(baseProduct(), buyer)

		assert.Equal(t, 90, result.Score)
		assert.Contains(t, result.Reasons, ReasonNearbyLocation)
	})

	t.Run("distance at the radius earns nothing", func(t *testing.T) {
		scorer := NewScorer(fixedDistance(100), 0)
		buyer := baseBuyer()
		buyer.Location = "Dijon"

		result := scorer.Score(baseProduct(), buyer)

		assert.Equal(t, 80, result.Score)
		assert.NotContains(t, result.Reasons, ReasonNearbyLocation)
	})

	t.Run("configured radius widens the nearby band", func(t *testing.T) {
		buyer := baseBuyer()
		buyer.Location = "Grenoble"

		defaultRadius := NewScorer(fixedDistance(150), 0).Score(baseProduct(), buyer)
		widened := NewScorer(fixedDistance(150), 200).Score(baseProduct(), buyer)

		assert.NotContains(t, defaultRadius.Reasons, ReasonNearbyLocation)
		assert.Contains(t, widened.Reasons, ReasonNearbyLocation)
		assert.Equal(t, defaultRadius.Score+10, widened.Score)
	})

	t.Run("unknown location uses the sentinel and earns nothing", func(t *testing.T) {
		scorer := NewScorer(geo.NewDefaultEstimator(), 0)
		buyer := baseBuyer()
		buyer.Location = "Atlantis"

		result := scorer.Score(baseProduct(), buyer)

		assert.NotContains(t, result.Reasons, ReasonSameLocation)
		assert.NotContains(t, result.Reasons, ReasonNearbyLocation)
	})
}

func TestScorer_Score_Bounds(t *testing.T) {
	scorer := NewScorer(geo.NewDefaultEstimator(), 0)

	for _, product := range catalog.SampleProducts() {
		for _, buyer := range catalog.SampleBuyers() {
			result := scorer.Score(product, buyer)

			require.GreaterOrEqual(t, result.Score, 0)
			require.LessOrEqual(t, result.Score, 100)
			require.LessOrEqual(t, len(result.Reasons), 4)
			if product.Category == buyer.PreferredCategory {
				require.GreaterOrEqual(t, result.Score, 40)
			}
		}
	}
}
