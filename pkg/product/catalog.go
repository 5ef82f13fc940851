package product

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultSeed []byte

// Seed describes one catalog entry before it is issued an id.
type Seed struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

type seedFile struct {
	Products []Seed `yaml:"products"`
}

// Catalog is the fixed, ordered list of products offered for a session.
// It is never modified after construction.
type Catalog struct {
	products []Product
}

// NewCatalog builds products from seeds in order, drawing ids from seq.
func NewCatalog(seq *Sequence, seeds []Seed) (*Catalog, error) {
	products := make([]Product, 0, len(seeds))
	for i, s := range seeds {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			return nil, fmt.Errorf("seed %d price %q: %w", i, s.Price, err)
		}
		category, err := ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		p, err := New(seq, s.Name, price, category)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		products = append(products, p)
	}
	return &Catalog{products: products}, nil
}

// ParseSeeds decodes a YAML seed document.
func ParseSeeds(data []byte) ([]Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return f.Products, nil
}

// DefaultCatalog builds the built-in four-product catalog.
func DefaultCatalog(seq *Sequence) (*Catalog, error) {
	seeds, err := ParseSeeds(defaultSeed)
	if err != nil {
		return nil, err
	}
	return NewCatalog(seq, seeds)
}

// At returns the product at the zero-based position i.
func (c *Catalog) At(i int) (Product, bool) {
	if i < 0 || i >= len(c.products) {
		return Product{}, false
	}
	return c.products[i], true
}

// Len reports the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Products returns a copy of the catalog in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
