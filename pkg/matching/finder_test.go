package matching

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Ramsey-B/fern/internal/appcontext"
	"github.com/Ramsey-B/fern/internal/tracing"
	"github.com/Ramsey-B/fern/pkg/catalog"
	"github.com/Ramsey-B/fern/pkg/geo"
	"github.com/Ramsey-B/fern/pkg/prediction"
)

func newTestFinder(t *testing.T) *Finder {
	t.Helper()
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	scorer := NewScorer(geo.NewDefaultEstimator(), 0)
	return NewFinder(logger, catalog.Sample(), scorer, prediction.NewPredictor(), DefaultConfig())
}

func TestFinder_MatchesForProduct(t *testing.T) {
	finder := newTestFinder(t)
	ctx := context.Background()

	t.Run("returns one result per buyer sorted by score", func(t *testing.T) {
		results := finder.MatchesForProduct(ctx, 1)

		require.Len(t, results, 5)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("perfect pairing comes first with full prediction", func(t *testing.T) {
		results := finder.MatchesForProduct(ctx, 1)

		first := results[0]
		assert.Equal(t, 1, first.BuyerID)
		assert.Equal(t, "Enterprise SA", first.BuyerName)
		assert.Equal(t, 100, first.Score)
		// raw materials demand is high, so the probability clamps at 100
		assert.Equal(t, 100, first.Prediction.Probability)
		assert.Equal(t, "under_1_month", string(first.Prediction.EstimatedTimeframe))
		assert.InDelta(t, 45.0, first.Prediction.PotentialValue, 0.001)
	})

	t.Run("ties keep buyer load order", func(t *testing.T) {
		results := finder.MatchesForProduct(ctx, 1)

		// ValorEco and GreenRecycl both score 50 against product 1
		assert.Equal(t, 3, results[1].BuyerID)
		assert.Equal(t, results[1].Score, results[2].Score)
		assert.Equal(t, 5, results[2].BuyerID)
	})

	t.Run("unknown product yields an empty list", func(t *testing.T) {
		results := finder.MatchesForProduct(ctx, 9999)

		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestFinder_MatchesForBuyer(t *testing.T) {
	finder := newTestFinder(t)
	ctx := context.Background()

	t.Run("returns one result per product sorted by score", func(t *testing.T) {
		results := finder.MatchesForBuyer(ctx, 2)

		require.Len(t, results, 5)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
		for _, m := range results {
			assert.Equal(t, 2, m.BuyerID)
		}
	})

	t.Run("unknown buyer yields an empty list", func(t *testing.T) {
		results := finder.MatchesForBuyer(ctx, 9999)

		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestCorrelationFields(t *testing.T) {
	t.Run("bare context yields no fields", func(t *testing.T) {
		fields := correlationFields(context.Background())

		assert.Empty(t, fields)
	})

	t.Run("request id is carried from the context", func(t *testing.T) {
		ctx := appcontext.SetRequestID(context.Background(), "req-123")

		fields := correlationFields(ctx)

		assert.Equal(t, "req-123", fields["request_id"])
		assert.NotContains(t, fields, "trace_id")
	})

	t.Run("active span contributes trace and span ids", func(t *testing.T) {
		provider := sdktrace.NewTracerProvider()
		tracing.SetTracer(provider.Tracer("test"))
		t.Cleanup(func() { tracing.SetTracer(nil) })

		ctx, span := tracing.StartSpan(context.Background(), "test.span")
		defer span.End()

		fields := correlationFields(ctx)

		assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
		assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
	})
}

func TestFinder_TopMatches(t *testing.T) {
	finder := newTestFinder(t)
	ctx := context.Background()

	t.Run("keeps only strong matches sorted by score", func(t *testing.T) {
		results := finder.TopMatches(ctx, 3)

		require.NotEmpty(t, results)
		assert.LessOrEqual(t, len(results), 3)
		for i, m := range results {
			assert.Greater(t, m.Score, 40)
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].Score, m.Score)
			}
		}
	})

	t.Run("non-positive limit falls back to the configured default", func(t *testing.T) {
		results := finder.TopMatches(ctx, 0)

		assert.LessOrEqual(t, len(results), DefaultConfig().TopMatchLimit)
	})

	t.Run("a score of exactly the threshold is excluded", func(t *testing.T) {
		// Ressourceco scores exactly 40 against product 1
		results := finder.TopMatches(ctx, 25)

		for _, m := range results {
			if m.ProductID == 1 && m.BuyerID == 2 {
				t.Fatalf("pair at the threshold score should be filtered out, got score %d", m.Score)
			}
		}
	})
}
