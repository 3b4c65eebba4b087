package catalog

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/models"
)

// SampleProducts returns the demo product catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Stainless steel 304",
			Category:    models.CategoryRawMaterials,
			Description: "Industrial-grade surplus stock",
			Price:       50, // per kg
			Quantity:    250,
			Location:    "Lyon",
			Status:      models.StockStatusSurplus,
		},
		{
			ID:          2,
			Name:        "XB42 electronic components",
			Category:    models.CategoryElectronics,
			Description: "Obsolete components from a discontinued product line",
			Price:       40, // per unit
			Quantity:    180,
			Location:    "Paris",
			Status:      models.StockStatusObsolete,
		},
		{
			ID:          3,
			Name:        "Reinforced RJ45 connectors",
			Category:    models.CategoryElectronics,
			Description: "Surplus stock from network rollouts",
			Price:       5, // per unit
			Quantity:    750,
			Location:    "Marseille",
			Status:      models.StockStatusSurplus,
		},
		{
			ID:          4,
			Name:        "Triple-wall corrugated cardboard",
			Category:    models.CategoryPackaging,
			Description: "Rarely used packaging",
			Price:       6, // per unit
			Quantity:    500,
			Location:    "Bordeaux",
			Status:      models.StockStatusUnderused,
		},
		{
			ID:          5,
			Name:        "Recycled plastic granules",
			Category:    models.CategoryRawMaterials,
			Description: "High-quality recycled plastic",
			Price:       25, // per kg
			Quantity:    400,
			Location:    "Lille",
			Status:      models.StockStatusSurplus,
		},
	}
}

// SampleBuyers returns the demo buyer catalog.
func SampleBuyers() []models.Buyer {
	return []models.Buyer{
		{
			ID:                    1,
			Name:                  "Enterprise SA",
			PreferredCategory:     models.CategoryRawMaterials,
			AlternativeCategories: []models.Category{models.CategoryPackaging},
			MinPrice:              20,
			MaxPrice:              60,
			MinQuantity:           100,
			Location:              "Lyon",
			PreferredStatuses:     []models.StockStatus{models.StockStatusSurplus, models.StockStatusUnderused},
		},
		{
			ID:                2,
			Name:              "Ressourceco",
			PreferredCategory: models.CategoryElectronics,
			MinPrice:          0,
			MaxPrice:          50,
			MinQuantity:       150,
			Location:          "Paris",
			PreferredStatuses: []models.StockStatus{models.StockStatusObsolete, models.StockStatusSurplus},
		},
		{
			ID:                    3,
			Name:                  "ValorEco",
			PreferredCategory:     models.CategoryRawMaterials,
			AlternativeCategories: []models.Category{models.CategoryElectronics},
			MinPrice:              10,
			MaxPrice:              30,
			MinQuantity:           200,
			Location:              "Marseille",
			PreferredStatuses:     []models.StockStatus{models.StockStatusSurplus},
		},
		{
			ID:                    4,
			Name:                  "EcoCircular",
			PreferredCategory:     models.CategoryPackaging,
			AlternativeCategories: []models.Category{models.CategoryRawMaterials},
			MinPrice:              0,
			MaxPrice:              15,
			MinQuantity:           300,
			Location:              "Bordeaux",
			PreferredStatuses:     []models.StockStatus{models.StockStatusUnderused, models.StockStatusSurplus},
		},
		{
			ID:                    5,
			Name:                  "GreenRecycl",
			PreferredCategory:     models.CategoryRawMaterials,
			AlternativeCategories: []models.Category{models.CategoryPackaging, models.CategoryElectronics},
			MinPrice:              0,
			MaxPrice:              40,
			MinQuantity:           100,
			Location:              "Lille",
			PreferredStatuses:     []models.StockStatus{models.StockStatusObsolete, models.StockStatusSurplus, models.StockStatusUnderused},
		},
	}
}

// SampleTrends returns the demo market-trend table.
func SampleTrends() map[models.Category]models.MarketTrend {
	return map[models.Category]models.MarketTrend{
		models.CategoryRawMaterials: {DemandLevel: models.DemandLevelHigh, AveragePrice: 45, GrowthRate: 5},
		models.CategoryElectronics:  {DemandLevel: models.DemandLevelMedium, AveragePrice: 35, GrowthRate: 2},
		models.CategoryPackaging:    {DemandLevel: models.DemandLevelLow, AveragePrice: 8, GrowthRate: -1},
	}
}

// Sample builds a catalog preloaded with the demo dataset.
func Sample() *Catalog {
	c := New()
	if err := c.LoadProducts(SampleProducts()); err != nil {
		panic(fmt.Sprintf("catalog: sample products: %v", err))
	}
	if err := c.LoadBuyers(SampleBuyers()); err != nil {
		panic(fmt.Sprintf("catalog: sample buyers: %v", err))
	}
	c.LoadTrends(SampleTrends())
	return c
}
