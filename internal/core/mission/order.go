package mission

import (
	"cmp"
	"slices"
)

// SortByUrgency orders missions by remaining time, soonest expiry first.
// Expired missions have negative remaining time and so come first of all.
// The sort is stable, so ties keep source order. Missions must have been
// refreshed against the same instant beforehand.
func SortByUrgency(missions []*Mission) {
	slices.SortStableFunc(missions, func(a, b *Mission) int {
		return cmp.Compare(a.remaining, b.remaining)
	})
}
