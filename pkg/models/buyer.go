package models

// Buyer is a purchasing profile for dormant stock. Same lifecycle as Product:
// loaded once, never mutated. MinPrice/MaxPrice form an inclusive acceptable
// range; records violating MinPrice <= MaxPrice are rejected at catalog load.
type Buyer struct {
	ID                    int           `json:"id" validate:"required,gt=0"`
	Name                  string        `json:"name" validate:"required"`
	PreferredCategory     Category      `json:"preferred_category" validate:"required"`
	AlternativeCategories []Category    `json:"alternative_categories,omitempty"`
	MinPrice              float64       `json:"min_price" validate:"gte=0"`
	MaxPrice              float64       `json:"max_price" validate:"gte=0,gtefield=MinPrice"`
	MinQuantity           float64       `json:"min_quantity" validate:"gte=0"`
	Location              string        `json:"location" validate:"required"`
	PreferredStatuses     []StockStatus `json:"preferred_statuses,omitempty"`
}

// AcceptsAlternative reports whether the category is one of the buyer's
// alternative categories.
func (b Buyer) AcceptsAlternative(category Category) bool {
	for _, alt := range b.AlternativeCategories {
		if alt == category {
			return true
		}
	}
	return false
}
