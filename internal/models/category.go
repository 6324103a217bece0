package models

// Icon is a closed set of glyph names a category can be tagged with.
// The presentation layer owns the mapping from Icon to an actual glyph.
type Icon string

const (
	IconHome     Icon = "home"
	IconTrees    Icon = "trees"
	IconChefHat  Icon = "chef-hat"
	IconCar      Icon = "car"
	IconSparkles Icon = "sparkles"
	IconPackage  Icon = "package"
)

var Icons = []Icon{IconHome, IconTrees, IconChefHat, IconCar, IconSparkles, IconPackage}

// ParseIcon returns the matching icon, falling back to IconHome for anything
// outside the set.
func ParseIcon(s string) Icon {
	for _, icon := range Icons {
		if string(icon) == s {
			return icon
		}
	}
	return IconHome
}

// Category is a house area (e.g., "Kitchen", "Garden") shown on the dashboard.
type Category struct {
	// ID is the unique identifier for the category (UUIDv7 format).
	ID string

	Name string

	Icon Icon

	Description string

	// TaskCount and CompletedCount are display hints seeded with the category.
	// They are not recomputed from the task sequence.
	TaskCount      int
	CompletedCount int
}

func (c Category) RecordID() string { return c.ID }

func (c Category) WithID(id string) Category {
	c.ID = id
	return c
}
