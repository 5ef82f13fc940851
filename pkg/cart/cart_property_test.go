package cart

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"cartflow/pkg/product"
)

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// fill adds catalog products to a fresh cart by position, wrapping indices.
func fill(cat *product.Catalog, picks []int) (*Cart, []product.Product) {
	c := New()
	var added []product.Product
	for _, i := range picks {
		p, _ := cat.At(i % cat.Len())
		c.Add(p)
		added = append(added, p)
	}
	return c, added
}

func TestCartProperties(t *testing.T) {
	cat := catalog(t)
	props := properties(t)
	picks := gen.SliceOf(gen.IntRange(0, 3))

	props.Property("add preserves count and order", prop.ForAll(
		func(picks []int) bool {
			c, added := fill(cat, picks)
			items := c.Items()
			if len(items) != len(added) {
				return false
			}
			for i := range items {
				if items[i].ID() != added[i].ID() {
					return false
				}
			}
			return true
		},
		picks,
	))

	props.Property("remove drops every item with the id and nothing else", prop.ForAll(
		func(picks []int, target int) bool {
			c, added := fill(cat, picks)
			id := product.FirstID + target
			var want []int
			for _, p := range added {
				if p.ID() != id {
					want = append(want, p.ID())
				}
			}
			c.Remove(id)
			items := c.Items()
			if len(items) != len(want) {
				return false
			}
			for i := range items {
				if items[i].ID() != want[i] {
					return false
				}
			}
			return true
		},
		picks,
		gen.IntRange(-2, 6),
	))

	props.Property("in-range discount scales the subtotal", prop.ForAll(
		func(picks []int, pct int) bool {
			c, _ := fill(cat, picks)
			d := decimal.NewFromInt(int64(pct)).Div(decimal.NewFromInt(100))
			if !c.SetDiscount(d) {
				return false
			}
			want := c.Subtotal().Mul(decimal.NewFromInt(1).Sub(d))
			return c.Total().Equal(want) && !c.Total().IsNegative()
		},
		picks,
		gen.IntRange(0, 100),
	))

	props.Property("out-of-range discount falls back to the subtotal", prop.ForAll(
		func(picks []int, pct int) bool {
			c, _ := fill(cat, picks)
			if pct >= 0 {
				pct += 101
			}
			accepted := c.SetDiscount(decimal.NewFromInt(int64(pct)).Div(decimal.NewFromInt(100)))
			return !accepted && c.Discount().IsZero() && c.Total().Equal(c.Subtotal())
		},
		picks,
		gen.IntRange(-1000, 1000),
	))

	props.TestingRun(t)
}
