// Package order records completed checkouts as receipts.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cartflow/pkg/cart"
)

// Line is one purchased product as it was priced at checkout.
type Line struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Order is the receipt for a single checkout.
type Order struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Lines    []Line          `json:"lines"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

// FromCart snapshots the cart contents into a new order with a fresh id.
func FromCart(customer string, c *cart.Cart, now time.Time) Order {
	items := c.Items()
	lines := make([]Line, 0, len(items))
	for _, p := range items {
		lines = append(lines, Line{ProductID: p.ID(), Name: p.Name(), Price: p.Price()})
	}
	return Order{
		ID:       uuid.NewString(),
		Customer: customer,
		Lines:    lines,
		Discount: c.Discount(),
		Total:    c.Total(),
		PlacedAt: now,
	}
}

// Repository defines behavior for storing receipts.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicate indicates an order with the same id was already stored.
	ErrDuplicate = errors.New("order already exists")
)
