package cart

import "encoding/json"

// Snapshot serializes the cart for durable storage.
func (c *Cart) Snapshot() ([]byte, error) {
	return json.Marshal(c.lines)
}

// Restore rebuilds a cart from a stored snapshot. A corrupt snapshot, or a
// snapshot whose lines violate the cart invariants, degrades to an empty
// cart, so rehydration never fails visibly.
func Restore(snapshot []byte) *Cart {
	if len(snapshot) == 0 {
		return New()
	}

	var lines []Line
	if err := json.Unmarshal(snapshot, &lines); err != nil {
		return New()
	}

	c := New()
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ItemID == "" || seen[l.ItemID] {
			continue
		}
		if l.UnitPrice < 0 || l.Quantity < 1 || l.StockLimit < 1 {
			continue
		}
		if l.Quantity > l.StockLimit {
			l.Quantity = l.StockLimit
		}
		seen[l.ItemID] = true
		c.lines = append(c.lines, l)
	}
	return c
}
