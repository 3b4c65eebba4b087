package models

// Timeframe is the discrete time-to-sale bucket produced by the predictor.
type Timeframe string

const (
	TimeframeUnderOneMonth    Timeframe = "under_1_month"
	TimeframeOneToThreeMonths Timeframe = "1_to_3_months"
	TimeframeThreeToSixMonths Timeframe = "3_to_6_months"
	TimeframeOverSixMonths    Timeframe = "over_6_months"
)

// Prediction estimates how a match would perform if pursued. Probability is
// always within [0, 100]; PotentialValue is in the trend's currency.
type Prediction struct {
	Probability        int       `json:"probability"`
	EstimatedTimeframe Timeframe `json:"estimated_timeframe"`
	PotentialValue     float64   `json:"potential_value"`
}

// MatchResult is one scored product/buyer pair. Reasons explain the score
// contributions in the order the criteria were evaluated. Results are
// computed on demand and never persisted.
type MatchResult struct {
	ProductID   int        `json:"product_id"`
	ProductName string     `json:"product_name"`
	BuyerID     int        `json:"buyer_id"`
	BuyerName   string     `json:"buyer_name"`
	Score       int        `json:"score"`
	Reasons     []string   `json:"reasons"`
	Prediction  Prediction `json:"prediction"`
}
