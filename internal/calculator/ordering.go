package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/homekeeper/internal/models"
)

// SortDoneLast returns a copy of seq with every done entry moved after every
// pending one. Relative order inside each group is preserved.
func SortDoneLast[T any](seq []T, done func(T) bool) []T {
	out := make([]T, 0, len(seq))
	var tail []T
	for _, rec := range seq {
		if done(rec) {
			tail = append(tail, rec)
		} else {
			out = append(out, rec)
		}
	}
	return append(out, tail...)
}

// SortBoughtLast orders the shopping list with pending items first.
func SortBoughtLast(items []models.GroceryItem) []models.GroceryItem {
	return SortDoneLast(items, func(item models.GroceryItem) bool { return item.Bought })
}

// Leaderboard ranks members by points, highest first, ties by name.
func Leaderboard(members []models.FamilyMember) []models.FamilyMember {
	out := slices.Clone(members)
	slices.SortStableFunc(out, func(a, b models.FamilyMember) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
