package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Monday 2024-06-10, mid-afternoon.
var now = time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

func TestDeliveryDateEligible(t *testing.T) {
	t.Run("Today is eligible regardless of time of day", func(t *testing.T) {
		midnightToday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		assert.True(t, DeliveryDateEligible(midnightToday, now))
		assert.True(t, DeliveryDateEligible(now, now))
	})

	t.Run("Future business day", func(t *testing.T) {
		tuesday := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
		assert.True(t, DeliveryDateEligible(tuesday, now))
	})

	t.Run("Saturday rejected", func(t *testing.T) {
		saturday := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		assert.False(t, DeliveryDateEligible(saturday, now))
	})

	t.Run("Sunday rejected", func(t *testing.T) {
		sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)
		assert.False(t, DeliveryDateEligible(sunday, now))
	})

	t.Run("Past date rejected", func(t *testing.T) {
		friday := time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC)
		assert.False(t, DeliveryDateEligible(friday, now))
	})

	t.Run("Zero date is input not ready", func(t *testing.T) {
		assert.False(t, DeliveryDateEligible(time.Time{}, now))
	})
}

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		day  int
		want bool
	}{
		{10, true},  // Monday
		{11, true},  // Tuesday
		{12, true},  // Wednesday
		{13, true},  // Thursday
		{14, true},  // Friday
		{15, false}, // Saturday
		{16, false}, // Sunday
	}

	for _, tt := range tests {
		date := time.Date(2024, 6, tt.day, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, IsBusinessDay(date), date.Weekday().String())
	}
}

func TestNextEligibleDeliveryDate(t *testing.T) {
	t.Run("Business day suggests today", func(t *testing.T) {
		got := NextEligibleDeliveryDate(now)
		assert.Equal(t, now.Day(), got.Day())
	})

	t.Run("Saturday suggests Monday", func(t *testing.T) {
		saturday := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
		got := NextEligibleDeliveryDate(saturday)
		assert.Equal(t, time.Monday, got.Weekday())
		assert.Equal(t, 17, got.Day())
	})
}
