// Package cart implements the client-session shopping cart: an ordered
// sequence of lines keyed by item ID, with stock-clamped mutations and a
// durable snapshot that degrades to an empty cart on corruption.
package cart

import (
	"masterbike/internal/core/pricing"
)

// Line is one product entry in the cart.
type Line struct {
	ItemID     string  `json:"item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	StockLimit int     `json:"stock_limit"`
}

// Cart holds the ordered lines. The zero value is ready to use.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalItems returns the summed quantity across lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal returns the cart subtotal.
func (c *Cart) Subtotal() float64 {
	lines := make([]pricing.Line, len(c.lines))
	for i, l := range c.lines {
		lines[i] = pricing.Line{ItemID: l.ItemID, UnitPrice: l.UnitPrice, Quantity: l.Quantity}
	}
	return pricing.Subtotal(lines)
}

// Add merges quantity units of the given product into the cart, clamping to
// the stock limit. The returned warning is non-empty when the clamp changed
// the request; it is informational, not an error.
func (c *Cart) Add(itemID, name string, unitPrice float64, quantity, stockLimit int) string {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			merged, warning := pricing.ClampQuantity(c.lines[i].Quantity+quantity, stockLimit)
			if merged < 1 {
				return warning
			}
			c.lines[i].Quantity = merged
			c.lines[i].StockLimit = stockLimit
			return warning
		}
	}

	clamped, warning := pricing.ClampQuantity(quantity, stockLimit)
	if clamped < 1 {
		return warning
	}
	c.lines = append(c.lines, Line{
		ItemID:     itemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   clamped,
		StockLimit: stockLimit,
	})
	return warning
}

// SetQuantity sets the quantity of an existing line, clamped to
// [1, stockLimit]. A requested quantity of 0 or below removes the line.
// Returns a warning message when the clamp changed the request.
func (c *Cart) SetQuantity(itemID string, quantity int) string {
	if pricing.RemoveRequested(quantity) {
		c.Remove(itemID)
		return ""
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			clamped, warning := pricing.ClampQuantity(quantity, c.lines[i].StockLimit)
			if clamped < 1 {
				c.removeAt(i)
				return warning
			}
			c.lines[i].Quantity = clamped
			return warning
		}
	}
	return ""
}

// Remove deletes the line with the given item ID, if present.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.removeAt(i)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
