// Package calculator holds the derived metrics computed from record sequences.
// Every function is pure: it takes the current sequence (and "now" where dates
// matter) and never keeps state.
package calculator

import "github.com/mmynk/homekeeper/internal/models"

// CompletionRatio returns completed/total in [0, 1], or 0 when total is 0.
func CompletionRatio(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// Percent is CompletionRatio scaled to 0-100, rounded half away from zero.
// It works in integers so exact halves such as 23/40 round up.
func Percent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

// TaskStats summarises a task sequence.
type TaskStats struct {
	Total          int
	Pending        int
	Completed      int
	NeedsAttention int
}

func (s TaskStats) Percent() int { return Percent(s.Completed, s.Total) }

func SummariseTasks(tasks []models.Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if t.NeedsAttention {
			stats.NeedsAttention++
		}
	}
	return stats
}

// GroceryStats summarises the shopping list.
// HighPriority counts only items that are still pending.
type GroceryStats struct {
	Total        int
	Pending      int
	Bought       int
	HighPriority int
}

func (s GroceryStats) Percent() int { return Percent(s.Bought, s.Total) }

func SummariseGroceries(items []models.GroceryItem) GroceryStats {
	stats := GroceryStats{Total: len(items)}
	for _, item := range items {
		if item.Bought {
			stats.Bought++
		} else {
			stats.Pending++
		}
		if item.Urgent() {
			stats.HighPriority++
		}
	}
	return stats
}

// CategoryProgress is the dashboard card for one category.
type CategoryProgress struct {
	Category models.Category
	Percent  int
}

// CategoryTotals sums the per-category hints into the overall progress.
type CategoryTotals struct {
	Tasks     int
	Completed int
}

func (t CategoryTotals) Percent() int { return Percent(t.Completed, t.Tasks) }

func SummariseCategories(categories []models.Category) ([]CategoryProgress, CategoryTotals) {
	progress := make([]CategoryProgress, len(categories))
	var totals CategoryTotals
	for i, c := range categories {
		progress[i] = CategoryProgress{
			Category: c,
			Percent:  Percent(c.CompletedCount, c.TaskCount),
		}
		totals.Tasks += c.TaskCount
		totals.Completed += c.CompletedCount
	}
	return progress, totals
}
