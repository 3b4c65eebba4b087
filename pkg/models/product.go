// Package models defines the core records of the valorization engine:
// dormant stock products, buyer profiles, market trends, and match results.
package models

// Category classifies a product for matching and market-trend lookup.
// The set is open; these are the categories the platform ships with.
type Category string

const (
	CategoryRawMaterials Category = "raw materials"
	CategoryElectronics  Category = "electronics"
	CategoryPackaging    Category = "packaging"
)

// StockStatus describes why a product is considered dormant. It is carried
// through matching but not scored; buyer status preferences are an extension
// point, not part of the current algorithm.
type StockStatus string

const (
	StockStatusSurplus   StockStatus = "surplus"
	StockStatusObsolete  StockStatus = "obsolete"
	StockStatusUnderused StockStatus = "underused"
)

// Product is a dormant stock item offered for valorization. Records are
// created at catalog-load time and never mutated. Price and Quantity share a
// unit convention that depends on the category (per kg or per unit).
type Product struct {
	ID          int         `json:"id" validate:"required,gt=0"`
	Name        string      `json:"name" validate:"required"`
	Category    Category    `json:"category" validate:"required"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price" validate:"gte=0"`
	Quantity    float64     `json:"quantity" validate:"gte=0"`
	Location    string      `json:"location" validate:"required"`
	Status      StockStatus `json:"status"`
}
