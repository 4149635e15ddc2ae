package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Add("a", "Bicicleta MTB", 10000, 2, 5)
	c.Add("b", "Cadena", 5000, 1, 3)

	snapshot, err := c.Snapshot()
	require.NoError(t, err)

	restored := Restore(snapshot)
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, c.Subtotal(), restored.Subtotal())
}

func TestRestoreDegradesToEmpty(t *testing.T) {
	t.Run("Corrupt JSON", func(t *testing.T) {
		c := Restore([]byte("{not json"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Empty snapshot", func(t *testing.T) {
		assert.Equal(t, 0, Restore(nil).Len())
		assert.Equal(t, 0, Restore([]byte{}).Len())
	})

	t.Run("Wrong shape", func(t *testing.T) {
		c := Restore([]byte(`{"items": "nope"}`))
		assert.Equal(t, 0, c.Len())
	})
}

func TestRestoreDropsInvalidLines(t *testing.T) {
	snapshot := []byte(`[
		{"item_id": "a", "name": "Bicicleta", "unit_price": 10000, "quantity": 2, "stock_limit": 5},
		{"item_id": "", "name": "sin id", "unit_price": 100, "quantity": 1, "stock_limit": 1},
		{"item_id": "b", "name": "negativa", "unit_price": -5, "quantity": 1, "stock_limit": 1},
		{"item_id": "c", "name": "sin cantidad", "unit_price": 100, "quantity": 0, "stock_limit": 1},
		{"item_id": "a", "name": "duplicada", "unit_price": 10000, "quantity": 1, "stock_limit": 5},
		{"item_id": "d", "name": "sobre stock", "unit_price": 100, "quantity": 9, "stock_limit": 3}
	]`)

	c := Restore(snapshot)
	require.Equal(t, 2, c.Len())

	lines := c.Lines()
	assert.Equal(t, "a", lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "d", lines[1].ItemID)
	assert.Equal(t, 3, lines[1].Quantity, "restored quantity is clamped to stock")
}
