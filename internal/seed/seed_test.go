package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/models"
)

func TestHousehold(t *testing.T) {
	now := time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC)

	snap, err := Household(now)
	require.NoError(t, err)

	require.Len(t, snap.Categories, 5)
	assert.Equal(t, "Exterior", snap.Categories[0].Name)
	assert.Equal(t, models.IconTrees, snap.Categories[0].Icon)
	assert.Equal(t, 8, snap.Categories[0].TaskCount)

	require.Len(t, snap.Tasks, 3)
	mow := snap.Tasks[0]
	assert.Equal(t, []string{"Dad"}, mow.AssignedTo)
	require.NotNil(t, mow.DueDate)
	assert.Equal(t, "2026-03-13", models.FormatDate(*mow.DueDate))
	assert.Nil(t, snap.Tasks[1].DueDate)
	assert.Equal(t, calculator.StatusOverdue, calculator.ClassifyDate(*snap.Tasks[2].DueDate, now))

	require.Len(t, snap.GroceryItems, 5)
	stats := calculator.SummariseGroceries(snap.GroceryItems)
	assert.Equal(t, 2, stats.Bought)
	assert.Equal(t, 1, stats.HighPriority)

	require.Len(t, snap.Cars, 2)
	corolla, civic := snap.Cars[0], snap.Cars[1]
	require.NotNil(t, corolla.Year)
	assert.Equal(t, 2020, *corolla.Year)
	assert.Equal(t, calculator.StatusUrgent, calculator.ClassifyDate(corolla.NextService, now))
	assert.Equal(t, calculator.StatusOverdue, calculator.ClassifyDate(civic.NextInspection, now))
	assert.True(t, calculator.IsLowFuel(civic.FuelLevel))
}

func TestParse_RejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"task priority", "tasks:\n  - id: a\n    priority: urgent\n"},
		{"grocery category", "grocery_items:\n  - id: a\n    category: toys\n    priority: low\n"},
		{"grocery priority", "grocery_items:\n  - id: a\n    category: food\n    priority: medium\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), time.Now())
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	snap, err := Parse(nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Cars)
}
