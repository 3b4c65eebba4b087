// Package catalog holds the in-memory product, buyer, and market-trend
// collections the matching engine runs against. Records are validated when
// loaded and immutable afterwards.
package catalog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Ramsey-B/fern/pkg/models"
)

var validate = validator.New()

// Catalog is the reference dataset for one matching run: products and buyers
// in load order, trends keyed by category. Loads replace the corresponding
// collection wholesale. Reads are safe for concurrent use.
type Catalog struct {
	mu sync.RWMutex

	products     []models.Product
	productIndex map[int]int
	buyers       []models.Buyer
	buyerIndex   map[int]int
	trends       map[models.Category]models.MarketTrend
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		productIndex: make(map[int]int),
		buyerIndex:   make(map[int]int),
		trends:       make(map[models.Category]models.MarketTrend),
	}
}

// LoadProducts validates and stores the product collection, replacing any
// previous one. The first invalid or duplicate record aborts the load and
// leaves the catalog unchanged.
func (c *Catalog) LoadProducts(products []models.Product) error {
	index := make(map[int]int, len(products))
	for i, product := range products {
		if err := validate.Struct(product); err != nil {
			return fmt.Errorf("product %d (index %d): %w", product.ID, i, err)
		}
		if _, exists := index[product.ID]; exists {
			return fmt.Errorf("product %d (index %d): duplicate id", product.ID, i)
		}
		index[product.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.productIndex = index
	return nil
}

// LoadBuyers validates and stores the buyer collection, replacing any
// previous one. Buyers with MinPrice > MaxPrice or negative bounds are
// rejected here so scoring never sees an impossible range.
func (c *Catalog) LoadBuyers(buyers []models.Buyer) error {
	index := make(map[int]int, len(buyers))
	for i, buyer := range buyers {
		if err := validate.Struct(buyer); err != nil {
			return fmt.Errorf("buyer %d (index %d): %w", buyer.ID, i, err)
		}
		if _, exists := index[buyer.ID]; exists {
			return fmt.Errorf("buyer %d (index %d): duplicate id", buyer.ID, i)
		}
		index[buyer.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.buyers = buyers
	c.buyerIndex = index
	return nil
}

// LoadTrends stores the category trend table, replacing any previous one.
func (c *Catalog) LoadTrends(trends map[models.Category]models.MarketTrend) {
	copied := make(map[models.Category]models.MarketTrend, len(trends))
	for category, trend := range trends {
		copied[category] = trend
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.trends = copied
}

// Product returns the product with the given id.
func (c *Catalog) Product(id int) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.productIndex[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Buyer returns the buyer with the given id.
func (c *Catalog) Buyer(id int) (models.Buyer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.buyerIndex[id]
	if !ok {
		return models.Buyer{}, false
	}
	return c.buyers[i], true
}

// Products returns the products in load order.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Buyers returns the buyers in load order.
func (c *Catalog) Buyers() []models.Buyer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Buyer, len(c.buyers))
	copy(out, c.buyers)
	return out
}

// Trend returns the market trend for a category, or the documented default
// trend when the category has no entry.
func (c *Catalog) Trend(category models.Category) models.MarketTrend {
	c.mu.RLock()
	defer c.mu.RUnlock()

	trend, ok := c.trends[category]
	if !ok {
		return models.DefaultMarketTrend()
	}
	return trend
}

// ProductCount returns the number of loaded products.
func (c *Catalog) ProductCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// BuyerCount returns the number of loaded buyers.
func (c *Catalog) BuyerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.buyers)
}
