package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("New line", func(t *testing.T) {
		c := New()
		warning := c.Add("bike-1", "Bicicleta MTB", 10000, 2, 5)
		assert.Empty(t, warning)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 2, c.TotalItems())
	})

	t.Run("Merging an existing item accumulates quantity", func(t *testing.T) {
		c := New()
		c.Add("bike-1", "Bicicleta MTB", 10000, 2, 5)
		warning := c.Add("bike-1", "Bicicleta MTB", 10000, 1, 5)
		assert.Empty(t, warning)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 3, c.TotalItems())
	})

	t.Run("Adding five to a line with stock three clamps and warns", func(t *testing.T) {
		c := New()
		warning := c.Add("part-1", "Cadena", 5000, 5, 3)
		assert.NotEmpty(t, warning)
		require.Equal(t, 1, c.Len())
		assert.Equal(t, 3, c.Lines()[0].Quantity)
	})

	t.Run("Merge past the stock limit clamps and warns", func(t *testing.T) {
		c := New()
		c.Add("part-1", "Cadena", 5000, 2, 3)
		warning := c.Add("part-1", "Cadena", 5000, 4, 3)
		assert.NotEmpty(t, warning)
		assert.Equal(t, 3, c.Lines()[0].Quantity)
	})

	t.Run("Out of stock item is not added", func(t *testing.T) {
		c := New()
		warning := c.Add("part-2", "Pedal", 3000, 1, 0)
		assert.NotEmpty(t, warning)
		assert.Equal(t, 0, c.Len())
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("Within stock", func(t *testing.T) {
		c := New()
		c.Add("bike-1", "Bicicleta", 10000, 1, 5)
		warning := c.SetQuantity("bike-1", 4)
		assert.Empty(t, warning)
		assert.Equal(t, 4, c.Lines()[0].Quantity)
	})

	t.Run("Above stock clamps to limit", func(t *testing.T) {
		c := New()
		c.Add("bike-1", "Bicicleta", 10000, 1, 3)
		warning := c.SetQuantity("bike-1", 10)
		assert.NotEmpty(t, warning)
		assert.Equal(t, 3, c.Lines()[0].Quantity)
	})

	t.Run("Zero or below removes the line", func(t *testing.T) {
		c := New()
		c.Add("bike-1", "Bicicleta", 10000, 2, 5)
		c.SetQuantity("bike-1", 0)
		assert.Equal(t, 0, c.Len())

		c.Add("bike-1", "Bicicleta", 10000, 2, 5)
		c.SetQuantity("bike-1", -1)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Unknown item is a no-op", func(t *testing.T) {
		c := New()
		assert.Empty(t, c.SetQuantity("ghost", 2))
	})
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.Add("a", "Bicicleta", 10000, 2, 10)
	c.Add("b", "Repuesto", 5000, 1, 10)
	assert.Equal(t, 25000.0, c.Subtotal())

	c.Clear()
	assert.Equal(t, 0.0, c.Subtotal())
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add("a", "Bicicleta", 10000, 1, 5)
	c.Add("b", "Repuesto", 5000, 1, 5)
	c.Remove("a")
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b", c.Lines()[0].ItemID)
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add("a", "Bicicleta", 10000, 1, 5)
	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
