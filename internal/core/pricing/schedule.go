package pricing

import "time"

// sameCalendarDay compares two instants by calendar date in the location of
// the first argument.
func sameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsBusinessDay reports whether the date falls on Monday through Friday.
func IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DeliveryDateEligible reports whether candidate is a valid delivery date
// relative to now: not a weekend and not strictly before today. Today is
// always eligible regardless of time of day; comparison is by calendar
// date, not instant. A zero candidate is "input not ready" and ineligible.
func DeliveryDateEligible(candidate, now time.Time) bool {
	if candidate.IsZero() {
		return false
	}
	if !IsBusinessDay(candidate) {
		return false
	}
	if sameCalendarDay(candidate, now) {
		return true
	}
	return candidate.After(now)
}

// NextEligibleDeliveryDate returns the earliest eligible delivery date on or
// after now, for suggesting a default in the date picker.
func NextEligibleDeliveryDate(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for !DeliveryDateEligible(candidate, now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}
