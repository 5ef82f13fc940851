// Package session runs the interactive shopping menu for one customer.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"cartflow/pkg/customer"
	"cartflow/pkg/logger"
	"cartflow/pkg/order"
	"cartflow/pkg/order/memory"
	"cartflow/pkg/otel"
	"cartflow/pkg/product"
)

const (
	msgInvalidInput   = "Invalid input! Please enter a valid number."
	msgInvalidChoice  = "Invalid choice! Please try again."
	msgInvalidProduct = "Invalid product number!"
	msgCartEmpty      = "Cart is empty!"
	msgItemAdded      = "Item added successfully!"
	msgItemRemoved    = "Item removed successfully!"
	msgDiscount       = "Discount applied successfully!"
)

var hundred = decimal.NewFromInt(100)

// errExit stops the loop after the exit command.
var errExit = errors.New("exit requested")

type handler func(ctx context.Context) error

// Session drives the menu loop for a single customer against a fixed catalog.
type Session struct {
	in       *Scanner
	out      io.Writer
	customer *customer.Customer
	catalog  *product.Catalog
	orders   order.Repository
	log      *logger.Logger
	now      func() time.Time
	handlers map[Command]handler
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithOrders sets the repository that receives checkout receipts.
func WithOrders(repo order.Repository) Option {
	return func(s *Session) { s.orders = repo }
}

// WithClock sets the time source stamped on receipts.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New returns a Session reading commands from in and writing responses to out.
func New(in io.Reader, out io.Writer, c *customer.Customer, catalog *product.Catalog, opts ...Option) *Session {
	s := &Session{
		in:       NewScanner(in),
		out:      out,
		customer: c,
		catalog:  catalog,
		orders:   memory.New(),
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = map[Command]handler{
		CommandAdd:      s.add,
		CommandRemove:   s.remove,
		CommandView:     s.view,
		CommandDiscount: s.discount,
		CommandCheckout: s.checkout,
		CommandExit:     s.exit,
	}
	return s
}

// Run shows the menu and dispatches selections until the exit command is
// chosen or the input ends. Malformed input never stops the loop.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info(ctx, "session started", "customer", s.customer.Name(), "catalog_size", s.catalog.Len())
	for {
		s.printMenu()
		n, ok, err := s.readInt(ctx)
		if errors.Is(err, io.EOF) {
			s.log.Info(ctx, "input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}
		if !ok {
			continue
		}

		cmd, ok := ParseCommand(n)
		if !ok {
			s.println(msgInvalidChoice)
			s.log.Debug(ctx, "invalid choice", "choice", n)
			continue
		}

		spanCtx, span := otel.AddSpan(ctx, "session."+cmd.String(), attribute.String("customer", s.customer.Name()))
		err = s.handlers[cmd](spanCtx)
		span.End()

		switch {
		case errors.Is(err, errExit):
			s.log.Info(ctx, "session ended", "customer", s.customer.Name())
			return nil
		case errors.Is(err, io.EOF):
			s.log.Info(ctx, "input closed", "command", cmd.String())
			return nil
		case err != nil:
			return fmt.Errorf("%s: %w", cmd, err)
		}
	}
}

// Receipts returns the orders placed during this session, oldest first.
func (s *Session) Receipts(ctx context.Context) ([]order.Order, error) {
	return s.orders.List(ctx)
}

func (s *Session) printMenu() {
	fmt.Fprintf(s.out, "\nWelcome %s\n1. Add Item\n2. Remove Item\n3. View Cart\n4. Apply Discount\n5. Checkout\n6. Exit\nEnter choice: ",
		s.customer.Name())
}

func (s *Session) add(ctx context.Context) error {
	s.println("\nAvailable Products:")
	for i, p := range s.catalog.Products() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, p)
	}
	s.print("Enter product number: ")

	n, ok, err := s.readInt(ctx)
	if err != nil || !ok {
		return err
	}
	p, found := s.catalog.At(n - 1)
	if !found {
		s.println(msgInvalidProduct)
		s.log.Debug(ctx, "invalid product number", "number", n)
		return nil
	}
	s.customer.Cart().Add(p)
	s.println(msgItemAdded)
	s.log.Info(ctx, "item added", "product_id", p.ID(), "name", p.Name(), "cart_size", s.customer.Cart().Len())
	return nil
}

func (s *Session) remove(ctx context.Context) error {
	c := s.customer.Cart()
	if c.IsEmpty() {
		s.println(msgCartEmpty)
		return nil
	}
	s.printCart()
	s.print("Enter product ID to remove: ")

	id, ok, err := s.readInt(ctx)
	if err != nil || !ok {
		return err
	}
	removed := c.Remove(id)
	s.println(msgItemRemoved)
	s.log.Info(ctx, "items removed", "product_id", id, "removed", removed, "cart_size", c.Len())
	return nil
}

func (s *Session) view(ctx context.Context) error {
	s.printCart()
	return nil
}

func (s *Session) discount(ctx context.Context) error {
	s.print("Enter discount percentage (0-100): ")

	pct, err := s.in.Decimal()
	switch {
	case errors.Is(err, ErrNotNumber):
		s.invalidInput(ctx, err)
		return nil
	case errors.Is(err, ErrNotFinite):
		s.customer.Cart().ResetDiscount()
		s.log.Debug(ctx, "discount out of range, reset to zero", "error", err)
	case err != nil:
		return err
	default:
		if !s.customer.Cart().SetDiscount(pct.Div(hundred)) {
			s.log.Debug(ctx, "discount out of range, reset to zero", "percentage", pct.String())
		}
	}
	s.println(msgDiscount)
	s.log.Info(ctx, "discount set", "discount", s.customer.Cart().Discount().String())
	return nil
}

func (s *Session) checkout(ctx context.Context) error {
	s.printCart()
	c := s.customer.Cart()
	if c.IsEmpty() {
		return nil
	}
	fmt.Fprintf(s.out, "Thank you for shopping, %s!\n", s.customer.Name())

	o := order.FromCart(s.customer.Name(), c, s.now())
	if err := s.orders.Create(ctx, o); err != nil {
		s.log.Error(ctx, "record receipt", "order_id", o.ID, "error", err)
	}
	c.Clear()
	s.log.Info(ctx, "checkout", "order_id", o.ID, "items", len(o.Lines), "total", o.Total.StringFixed(2))
	return nil
}

func (s *Session) exit(ctx context.Context) error {
	return errExit
}

func (s *Session) printCart() {
	c := s.customer.Cart()
	s.println("\nCart Contents:")
	if c.IsEmpty() {
		s.println(msgCartEmpty)
		return
	}
	for _, p := range c.Items() {
		s.println(p.String())
	}
	fmt.Fprintf(s.out, "Total: $%s\n", c.Total().StringFixed(2))
}

// readInt reads an integer, reporting malformed input to the user. ok is false
// when the token was rejected; err is set only for stream failures.
func (s *Session) readInt(ctx context.Context) (n int, ok bool, err error) {
	n, err = s.in.Int()
	if errors.Is(err, ErrNotNumber) {
		s.invalidInput(ctx, err)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func (s *Session) invalidInput(ctx context.Context, err error) {
	s.println(msgInvalidInput)
	s.log.Debug(ctx, "discarded input", "error", err)
}

func (s *Session) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
