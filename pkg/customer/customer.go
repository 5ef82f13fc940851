// Package customer models the shopper who owns a cart.
package customer

import "cartflow/pkg/cart"

// DefaultName is used when no customer name is supplied.
const DefaultName = "Guest"

// Customer pairs a display name with the one cart it owns.
type Customer struct {
	name string
	cart *cart.Cart
}

// New returns a customer with an empty cart. An empty name becomes DefaultName.
func New(name string) *Customer {
	if name == "" {
		name = DefaultName
	}
	return &Customer{name: name, cart: cart.New()}
}

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// Cart returns the customer's cart.
func (c *Customer) Cart() *cart.Cart { return c.cart }
