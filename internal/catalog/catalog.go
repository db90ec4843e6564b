package catalog

import (
	"fmt"

	"github.com/abusaud/storefront/internal/domain"
)

// Catalog is an ordered, read-only list of products
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New builds a catalog from products, rejecting empty or duplicate IDs and
// negative prices. The slice is copied.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has an empty ID", p.Name)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product ID: %s", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s has a negative price", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// MustNew is New for package-level literals; it panics on error
func MustNew(products []domain.Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the product with the given ID
func (c *Catalog) Lookup(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Contains reports whether id is part of the catalog
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Products returns the products in catalog order
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}
