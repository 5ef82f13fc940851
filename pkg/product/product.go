// Package product defines catalog products and the catalog that issues them.
package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category tags a product with the department it belongs to.
type Category int

// Categories a product can belong to.
const (
	Electronics Category = iota
	Clothing
	Grocery
)

var categoryNames = map[Category]string{
	Electronics: "ELECTRONICS",
	Clothing:    "CLOTHING",
	Grocery:     "GROCERY",
}

// String returns the upper-case category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a category name, case-insensitively, to its value.
func ParseCategory(s string) (Category, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

var (
	// ErrEmptyName indicates a product was constructed without a name.
	ErrEmptyName = errors.New("product name is empty")
	// ErrNegativePrice indicates a product was constructed with a price below zero.
	ErrNegativePrice = errors.New("product price is negative")
	// ErrUnknownCategory indicates a category name outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")
)

// FirstID is the id handed out by a fresh Sequence.
const FirstID = 1000

// Sequence issues product ids. Ids start at FirstID and are never reused.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence starting at FirstID.
func NewSequence() *Sequence {
	return &Sequence{next: FirstID}
}

// Next returns the next unused id.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Product is an immutable catalog entry.
type Product struct {
	id       int
	name     string
	price    decimal.Decimal
	category Category
}

// New validates the fields and builds a product with the next id from seq.
// A rejected product does not consume an id.
func New(seq *Sequence, name string, price decimal.Decimal, category Category) (Product, error) {
	if name == "" {
		return Product{}, ErrEmptyName
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: %s", ErrNegativePrice, price)
	}
	return Product{id: seq.Next(), name: name, price: price, category: category}, nil
}

// ID returns the product's unique id.
func (p Product) ID() int { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Price returns the unit price.
func (p Product) Price() decimal.Decimal { return p.price }

// Category returns the product's category.
func (p Product) Category() Category { return p.category }

// String renders the product the way the console lists it.
func (p Product) String() string {
	return fmt.Sprintf("%d: %s - $%s (%s)", p.id, p.name, p.price.String(), p.category)
}
