package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestDurationHours(t *testing.T) {
	t.Run("Exact hour", func(t *testing.T) {
		assert.Equal(t, 1, DurationHours(at(10, 0), at(11, 0)))
	})

	t.Run("Partial hour rounds up", func(t *testing.T) {
		// 61 minutes bills as 2 hours
		assert.Equal(t, 2, DurationHours(at(10, 0), at(11, 1)))
	})

	t.Run("Ninety minutes is two blocks", func(t *testing.T) {
		assert.Equal(t, 2, DurationHours(at(10, 0), at(11, 30)))
	})

	t.Run("Sub-minute booking bills one block", func(t *testing.T) {
		start := at(10, 0)
		assert.Equal(t, 1, DurationHours(start, start.Add(30*time.Second)))
	})

	t.Run("End before start", func(t *testing.T) {
		assert.Equal(t, 0, DurationHours(at(11, 0), at(10, 0)))
	})

	t.Run("End equals start", func(t *testing.T) {
		assert.Equal(t, 0, DurationHours(at(10, 0), at(10, 0)))
	})

	t.Run("Missing timestamps", func(t *testing.T) {
		assert.Equal(t, 0, DurationHours(time.Time{}, at(10, 0)))
		assert.Equal(t, 0, DurationHours(at(10, 0), time.Time{}))
	})
}

func TestRentalPrice(t *testing.T) {
	t.Run("Rate 2500 for 90 minutes totals 5000", func(t *testing.T) {
		price := RentalPrice(at(10, 0), at(11, 30), 2500)
		assert.Equal(t, 5000.0, price)
	})

	t.Run("Neutral value when not quotable", func(t *testing.T) {
		assert.Equal(t, 0.0, RentalPrice(at(11, 0), at(10, 0), 2500))
		assert.Equal(t, 0.0, RentalPrice(time.Time{}, at(11, 0), 2500))
		assert.Equal(t, 0.0, RentalPrice(at(10, 0), time.Time{}, 2500))
	})

	t.Run("Malformed rate is not quotable", func(t *testing.T) {
		assert.Equal(t, 0.0, RentalPrice(at(10, 0), at(11, 0), -1))
		assert.Equal(t, 0.0, RentalPrice(at(10, 0), at(11, 0), math.NaN()))
		assert.Equal(t, 0.0, RentalPrice(at(10, 0), at(11, 0), math.Inf(1)))
	})

	t.Run("Zero rate is a free rental, not an error", func(t *testing.T) {
		assert.Equal(t, 0.0, RentalPrice(at(10, 0), at(12, 0), 0))
	})

	t.Run("Monotonically non-decreasing in end time", func(t *testing.T) {
		start := at(9, 0)
		prev := 0.0
		for minutes := 1; minutes <= 600; minutes += 13 {
			price := RentalPrice(start, start.Add(time.Duration(minutes)*time.Minute), 2500)
			assert.GreaterOrEqual(t, price, prev)
			prev = price
		}
	})
}

func TestSubtotal(t *testing.T) {
	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Subtotal(nil))
		assert.Equal(t, 0.0, Subtotal([]Line{}))
	})

	t.Run("Two lines", func(t *testing.T) {
		lines := []Line{
			{ItemID: "a", UnitPrice: 10000, Quantity: 2},
			{ItemID: "b", UnitPrice: 5000, Quantity: 1},
		}
		assert.Equal(t, 25000.0, Subtotal(lines))
	})

	t.Run("Invariant under reordering", func(t *testing.T) {
		lines := []Line{
			{ItemID: "a", UnitPrice: 1990, Quantity: 3},
			{ItemID: "b", UnitPrice: 45000, Quantity: 1},
			{ItemID: "c", UnitPrice: 700, Quantity: 5},
		}
		reversed := []Line{lines[2], lines[1], lines[0]}
		assert.Equal(t, Subtotal(lines), Subtotal(reversed))
	})
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name        string
		requested   int
		stockLimit  int
		want        int
		wantWarning bool
	}{
		{"Within limits", 2, 5, 2, false},
		{"At stock limit", 3, 3, 3, false},
		{"Above stock clamps to limit", 5, 3, 3, true},
		{"Clamp is idempotent at the boundary", 3, 3, 3, false},
		{"Below one clamps up", 0, 3, 1, true},
		{"No stock", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warning := ClampQuantity(tt.requested, tt.stockLimit)
			assert.Equal(t, tt.want, got)
			if tt.wantWarning {
				assert.NotEmpty(t, warning)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestRemoveRequested(t *testing.T) {
	assert.True(t, RemoveRequested(0))
	assert.True(t, RemoveRequested(-2))
	assert.False(t, RemoveRequested(1))
}
