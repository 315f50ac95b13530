package catalog

import (
	"fmt"

	"gift-shop/internal/model"
)

// Catalog is an immutable product lookup table built once at startup.
// No mutex needed - the catalogue is read-only after initialization.
type Catalog struct {
	byID    map[string]model.Product
	ordered []model.Product
}

// New builds a catalogue from a product list. It rejects duplicate ids and
// unknown tier types so a bad catalogue source fails at startup, not at
// purchase time.
func New(products []model.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalogue is empty")
	}

	c := &Catalog{
		byID:    make(map[string]model.Product, len(products)),
		ordered: make([]model.Product, 0, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product with empty id")
		}
		if !p.Type.Valid() {
			return nil, fmt.Errorf("product %s: unknown type %q", p.ID, p.Type)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		c.byID[p.ID] = p
		c.ordered = append(c.ordered, p)
	}

	return c, nil
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in catalogue order. The returned slice is a copy.
func (c *Catalog) All() []model.Product {
	products := make([]model.Product, len(c.ordered))
	copy(products, c.ordered)
	return products
}

// Size returns the number of products in the catalogue.
func (c *Catalog) Size() int {
	return len(c.ordered)
}
