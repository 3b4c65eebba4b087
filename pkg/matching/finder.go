package matching

import (
	"context"
	"sort"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/internal/appcontext"
	"github.com/Ramsey-B/fern/internal/tracing"
	"github.com/Ramsey-B/fern/pkg/catalog"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/prediction"
)

// Config contains configuration for the match finder.
type Config struct {
	TopMatchLimit int // Maximum results from TopMatches when no limit is given (default: 5)
	MinTopScore   int // TopMatches keeps pairs scoring strictly above this (default: 40)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TopMatchLimit: 5,
		MinTopScore:   40,
	}
}

// Finder runs the scorer and predictor over a catalog. All entry points are
// read-only and total: unknown ids produce empty result lists, categories
// without a trend entry fall back to the default trend.
type Finder struct {
	log       ectologger.Logger
	catalog   *catalog.Catalog
	scorer    *Scorer
	predictor *prediction.Predictor
	cfg       Config
}

// NewFinder creates a match finder over the given catalog.
func NewFinder(
	log ectologger.Logger,
	cat *catalog.Catalog,
	scorer *Scorer,
	predictor *prediction.Predictor,
	cfg Config,
) *Finder {
	return &Finder{
		log:       log,
		catalog:   cat,
		scorer:    scorer,
		predictor: predictor,
		cfg:       cfg,
	}
}

// MatchesForProduct scores the given product against every buyer in the
// catalog and returns one enriched result per buyer, sorted by score
// descending. Ties keep buyer enumeration order. An unknown product id
// yields an empty list; callers must treat empty as "not found or no data".
func (f *Finder) MatchesForProduct(ctx context.Context, productID int) []models.MatchResult {
	ctx, span := tracing.StartSpan(ctx, "matching.Finder.MatchesForProduct")
	defer span.End()

	fields := correlationFields(ctx)
	fields["product_id"] = productID
	log := f.log.WithContext(ctx).WithFields(fields)

	product, ok := f.catalog.Product(productID)
	if !ok {
		log.Debug("Product not found")
		return []models.MatchResult{}
	}

	buyers := f.catalog.Buyers()
	results := make([]models.MatchResult, 0, len(buyers))
	for _, buyer := range buyers {
		results = append(results, f.buildMatch(product, buyer))
	}

	sortByScore(results)

	log.WithFields(map[string]any{"match_count": len(results)}).Debug("Scored product against all buyers")

	return results
}

// MatchesForBuyer is the symmetric lookup: the given buyer against every
// product in the catalog.
func (f *Finder) MatchesForBuyer(ctx context.Context, buyerID int) []models.MatchResult {
	ctx, span := tracing.StartSpan(ctx, "matching.Finder.MatchesForBuyer")
	defer span.End()

	fields := correlationFields(ctx)
	fields["buyer_id"] = buyerID
	log := f.log.WithContext(ctx).WithFields(fields)

	buyer, ok := f.catalog.Buyer(buyerID)
	if !ok {
		log.Debug("Buyer not found")
		return []models.MatchResult{}
	}

	products := f.catalog.Products()
	results := make([]models.MatchResult, 0, len(products))
	for _, product := range products {
		results = append(results, f.buildMatch(product, buyer))
	}

	sortByScore(results)

	log.WithFields(map[string]any{"match_count": len(results)}).Debug("Scored buyer against all products")

	return results
}

// TopMatches scores the full product × buyer cross product (products outer,
// buyers inner), keeps only meaningful matches (score strictly above
// MinTopScore), sorts descending by score, and returns at most limit
// entries. A limit <= 0 falls back to the configured default.
func (f *Finder) TopMatches(ctx context.Context, limit int) []models.MatchResult {
	ctx, span := tracing.StartSpan(ctx, "matching.Finder.TopMatches")
	defer span.End()

	if limit <= 0 {
		limit = f.cfg.TopMatchLimit
	}

	fields := correlationFields(ctx)
	fields["limit"] = limit
	log := f.log.WithContext(ctx).WithFields(fields)

	buyers := f.catalog.Buyers()
	results := make([]models.MatchResult, 0)
	pairCount := 0

	for _, product := range f.catalog.Products() {
		for _, buyer := range buyers {
			pairCount++
			match := f.buildMatch(product, buyer)
			if match.Score > f.cfg.MinTopScore {
				results = append(results, match)
			}
		}
	}

	sortByScore(results)
	if len(results) > limit {
		results = results[:limit]
	}

	log.WithFields(map[string]any{
		"pair_count":  pairCount,
		"match_count": len(results),
	}).Debug("Computed top matches")

	return results
}

// buildMatch scores one pair and enriches it with a prediction. The trend is
// resolved by product category; unknown categories get the default trend.
func (f *Finder) buildMatch(product models.Product, buyer models.Buyer) models.MatchResult {
	breakdown := f.scorer.Score(product, buyer)
	trend := f.catalog.Trend(product.Category)

	return models.MatchResult{
		ProductID:   product.ID,
		ProductName: product.Name,
		BuyerID:     buyer.ID,
		BuyerName:   buyer.Name,
		Score:       breakdown.Score,
		Reasons:     breakdown.Reasons,
		Prediction:  f.predictor.Predict(breakdown.Score, trend),
	}
}

// correlationFields collects the correlation ids carried on the context, so
// every log line from one invocation can be tied back to its request and
// trace. Absent ids are omitted rather than logged empty.
func correlationFields(ctx context.Context) map[string]any {
	fields := make(map[string]any, 4)
	if id := appcontext.GetRequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	if id := tracing.GetTraceID(ctx); id != "" {
		fields["trace_id"] = id
	}
	if id := tracing.GetSpanID(ctx); id != "" {
		fields["span_id"] = id
	}
	return fields
}

// sortByScore sorts results descending by score. The sort is stable so tied
// pairs keep their enumeration order.
func sortByScore(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
