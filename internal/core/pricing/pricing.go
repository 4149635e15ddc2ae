// Package pricing holds the rental and purchase pricing rules shared by the
// storefront order paths. Every function is total: input that is not yet
// quotable (missing timestamps, inverted intervals, bad rates) yields the
// neutral value instead of an error, so callers can recompute on every
// input change.
package pricing

import (
	"fmt"
	"math"
	"time"
)

// Line is one cart or order line as far as pricing is concerned.
type Line struct {
	ItemID    string
	UnitPrice float64
	Quantity  int
}

// DurationHours returns the number of whole-hour billing blocks between
// start and end, rounding up. A 61 minute booking bills as 2 hours.
// Returns 0 when either timestamp is zero or end <= start.
func DurationHours(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes == 0 {
		// Sub-minute bookings still occupy a block.
		minutes = 1
	}
	hours := minutes / 60
	if minutes%60 > 0 {
		hours++
	}
	return hours
}

// RentalPrice computes the rental total: whole-hour blocks times the hourly
// rate. Money is not rounded here; rounding to the minor unit happens only
// at display time.
func RentalPrice(start, end time.Time, hourlyRate float64) float64 {
	if hourlyRate < 0 || math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0) {
		return 0
	}
	return float64(DurationHours(start, end)) * hourlyRate
}

// Subtotal sums unit price times quantity across lines. The CartLine
// invariant (non-negative price, quantity >= 1) is the caller's
// responsibility; an empty slice totals 0.
func Subtotal(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// RemoveRequested reports whether a requested quantity means "remove the
// line" rather than "set the quantity".
func RemoveRequested(requested int) bool {
	return requested <= 0
}

// ClampQuantity clamps a requested quantity into [1, stockLimit]. When the
// clamp changed the request, the returned warning is non-empty; it is a
// message for the user, never an error. Callers should check
// RemoveRequested first: a request of 0 or below is a removal, and this
// function will clamp it up to 1.
func ClampQuantity(requested, stockLimit int) (int, string) {
	if stockLimit < 1 {
		return 0, "producto sin stock disponible"
	}
	if requested > stockLimit {
		return stockLimit, fmt.Sprintf("solo hay %d unidades disponibles", stockLimit)
	}
	if requested < 1 {
		return 1, "la cantidad mínima es 1"
	}
	return requested, ""
}
