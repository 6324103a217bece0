package models

import (
	"fmt"
	"slices"

	"github.com/mmynk/homekeeper/internal/records"
)

// GroceryCategory groups items on the shopping list.
type GroceryCategory string

const (
	GroceryFood     GroceryCategory = "food"
	GroceryHygiene  GroceryCategory = "hygiene"
	GroceryCleaning GroceryCategory = "cleaning"
	GroceryOther    GroceryCategory = "other"
)

var GroceryCategories = []GroceryCategory{GroceryFood, GroceryHygiene, GroceryCleaning, GroceryOther}

func ParseGroceryCategory(s string) (GroceryCategory, error) {
	c := GroceryCategory(s)
	if !slices.Contains(GroceryCategories, c) {
		return "", fmt.Errorf("unknown grocery category %q", s)
	}
	return c, nil
}

// GroceryPriority is either low or high; the list has no medium priority.
type GroceryPriority string

const (
	GroceryPriorityLow  GroceryPriority = "low"
	GroceryPriorityHigh GroceryPriority = "high"
)

var GroceryPriorities = []GroceryPriority{GroceryPriorityLow, GroceryPriorityHigh}

func ParseGroceryPriority(s string) (GroceryPriority, error) {
	p := GroceryPriority(s)
	if !slices.Contains(GroceryPriorities, p) {
		return "", fmt.Errorf("unknown grocery priority %q", s)
	}
	return p, nil
}

// GroceryItem is a single entry on the shared shopping list.
type GroceryItem struct {
	// ID is the unique identifier for the item (UUIDv7 format).
	ID string

	// Name is what to buy (e.g., "Milk").
	Name string

	Category GroceryCategory

	// Quantity is free text (e.g., "2 litres", "1 kg").
	Quantity string

	Priority GroceryPriority

	// Bought is set once someone has picked the item up.
	Bought bool

	// AddedBy is the family member who put the item on the list.
	AddedBy string
}

func (g GroceryItem) RecordID() string { return g.ID }

func (g GroceryItem) WithID(id string) GroceryItem {
	g.ID = id
	return g
}

// Toggle flips the bought flag.
func (g GroceryItem) Toggle(field records.Field) (GroceryItem, bool) {
	if field != records.FieldBought {
		return g, false
	}
	g.Bought = !g.Bought
	return g, true
}

// Urgent reports whether the item is high priority and still pending.
func (g GroceryItem) Urgent() bool {
	return g.Priority == GroceryPriorityHigh && !g.Bought
}
