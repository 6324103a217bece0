package views

import (
	"fmt"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
)

// TaskTab selects which tasks a category view shows.
type TaskTab string

const (
	TaskTabAll            TaskTab = "all"
	TaskTabPending        TaskTab = "pending"
	TaskTabCompleted      TaskTab = "completed"
	TaskTabNeedsAttention TaskTab = "needs-attention"
)

var TaskTabs = []TaskTab{TaskTabAll, TaskTabPending, TaskTabCompleted, TaskTabNeedsAttention}

// ParseTaskTab accepts a tab name; the empty string means all.
func ParseTaskTab(s string) (TaskTab, error) {
	if s == "" {
		return TaskTabAll, nil
	}
	for _, tab := range TaskTabs {
		if string(tab) == s {
			return tab, nil
		}
	}
	return "", fmt.Errorf("unknown task tab %q", s)
}

// Next cycles to the following tab.
func (t TaskTab) Next() TaskTab {
	return next(TaskTabs, t)
}

func (t TaskTab) Matches(task models.Task) bool {
	switch t {
	case TaskTabPending:
		return !task.Completed
	case TaskTabCompleted:
		return task.Completed
	case TaskTabNeedsAttention:
		return task.NeedsAttention
	default:
		return true
	}
}

// FilterTasks returns the tasks visible under tab, in sequence order.
func FilterTasks(tasks []models.Task, tab TaskTab) []models.Task {
	return records.Filter(tasks, tab.Matches)
}

// GroceryTab selects which items the shopping list shows.
type GroceryTab string

const (
	GroceryTabAll          GroceryTab = "all"
	GroceryTabPending      GroceryTab = "pending"
	GroceryTabBought       GroceryTab = "bought"
	GroceryTabHighPriority GroceryTab = "high-priority"
)

var GroceryTabs = []GroceryTab{GroceryTabAll, GroceryTabPending, GroceryTabBought, GroceryTabHighPriority}

func ParseGroceryTab(s string) (GroceryTab, error) {
	if s == "" {
		return GroceryTabAll, nil
	}
	for _, tab := range GroceryTabs {
		if string(tab) == s {
			return tab, nil
		}
	}
	return "", fmt.Errorf("unknown grocery tab %q", s)
}

func (t GroceryTab) Next() GroceryTab {
	return next(GroceryTabs, t)
}

// Matches reports whether item shows under t. High priority hides bought items.
func (t GroceryTab) Matches(item models.GroceryItem) bool {
	switch t {
	case GroceryTabPending:
		return !item.Bought
	case GroceryTabBought:
		return item.Bought
	case GroceryTabHighPriority:
		return item.Urgent()
	default:
		return true
	}
}

// FilterGroceries returns the items visible under tab with bought items last.
func FilterGroceries(items []models.GroceryItem, tab GroceryTab) []models.GroceryItem {
	return calculator.SortBoughtLast(records.Filter(items, tab.Matches))
}

func next[T comparable](all []T, cur T) T {
	for i, t := range all {
		if t == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
