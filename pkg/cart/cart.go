// Package cart holds a customer's selected products and discount.
package cart

import (
	"github.com/shopspring/decimal"

	"cartflow/pkg/product"
)

var one = decimal.NewFromInt(1)

// Cart is an ordered collection of products plus a discount fraction.
// The same product may appear more than once.
type Cart struct {
	items    []product.Product
	discount decimal.Decimal
}

// New returns an empty cart with no discount.
func New() *Cart {
	return &Cart{}
}

// Add appends p to the cart.
func (c *Cart) Add(p product.Product) {
	c.items = append(c.items, p)
}

// Remove drops every item with the given id and reports how many were removed.
// Removing an id that is not in the cart is a no-op.
func (c *Cart) Remove(id int) int {
	kept := c.items[:0]
	for _, p := range c.items {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	removed := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// SetDiscount stores d when it lies in [0, 1] and stores zero otherwise.
// It reports whether d was accepted.
func (c *Cart) SetDiscount(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(one) {
		c.discount = decimal.Zero
		return false
	}
	c.discount = d
	return true
}

// ResetDiscount stores a zero discount.
func (c *Cart) ResetDiscount() {
	c.discount = decimal.Zero
}

// Discount returns the stored discount fraction.
func (c *Cart) Discount() decimal.Decimal { return c.discount }

// Subtotal is the sum of item prices before discount.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.items {
		sum = sum.Add(p.Price())
	}
	return sum
}

// Total is the subtotal with the discount applied.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal()
	if c.discount.IsPositive() {
		return total.Mul(one.Sub(c.discount))
	}
	return total
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []product.Product {
	out := make([]product.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of items, counting duplicates.
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Clear empties the cart. The discount is kept.
func (c *Cart) Clear() {
	c.items = nil
}
