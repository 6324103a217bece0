package dialogs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/models"
)

func TestTaskDraft_Validate(t *testing.T) {
	valid := TaskDraft{Name: "Vacuum", AssignedTo: []string{"Mum"}, Priority: models.PriorityLow, Points: 10}

	tests := []struct {
		name  string
		edit  func(*TaskDraft)
		field string
	}{
		{name: "valid", edit: func(*TaskDraft) {}},
		{name: "blank name", edit: func(d *TaskDraft) { d.Name = "   " }, field: "name"},
		{name: "no assignees", edit: func(d *TaskDraft) { d.AssignedTo = nil }, field: "assignedTo"},
		{name: "blank assignees", edit: func(d *TaskDraft) { d.AssignedTo = []string{" ", ""} }, field: "assignedTo"},
		{name: "bad priority", edit: func(d *TaskDraft) { d.Priority = "urgent" }, field: "priority"},
		{name: "points too high", edit: func(d *TaskDraft) { d.Points = 101 }, field: "points"},
		{name: "points too low", edit: func(d *TaskDraft) { d.Points = 0 }, field: "points"},
		{name: "bad due date", edit: func(d *TaskDraft) { d.DueDate = "15/01/2024" }, field: "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			d.AssignedTo = append([]string(nil), valid.AssignedTo...)
			tt.edit(&d)
			err := d.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestTaskDraft_ToggleMember(t *testing.T) {
	d := NewTaskDraft()
	d.ToggleMember("Dad")
	d.ToggleMember("Anna")
	d.ToggleMember("Dad")
	assert.Equal(t, []string{"Anna"}, d.AssignedTo)
}

func TestTaskDraft_Task(t *testing.T) {
	d := TaskDraft{
		Name:       "  Mow the lawn ",
		AssignedTo: []string{"Dad"},
		Priority:   models.PriorityMedium,
		DueDate:    "2024-01-15",
		Points:     20,
	}

	task, err := d.Task("Garden")
	require.NoError(t, err)

	assert.Equal(t, "Mow the lawn", task.Name)
	assert.Equal(t, "Garden", task.Category)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *task.DueDate)
	assert.False(t, task.Completed)
	assert.False(t, task.NeedsAttention)
	assert.Zero(t, task.Comments)
}

func TestTaskDraft_TaskDropsRepeatedAssignees(t *testing.T) {
	d := TaskDraft{
		Name:       "Vacuum",
		AssignedTo: []string{"Mum", " Dad", "Mum", "Dad ", ""},
		Priority:   models.PriorityLow,
		Points:     10,
	}

	task, err := d.Task("Living Room")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mum", "Dad"}, task.AssignedTo)
	assert.Len(t, d.AssignedTo, 5, "draft is not modified")
}

func TestItemDraft(t *testing.T) {
	d := NewItemDraft([]string{"Mum", "Dad"})
	assert.Equal(t, "Mum", d.AddedBy)
	assert.Equal(t, models.GroceryFood, d.Category)
	assert.Equal(t, models.GroceryPriorityLow, d.Priority)

	d.Name = "Milk"
	assert.ErrorIs(t, d.Validate(), ErrInvalid, "quantity is required")

	d.Quantity = "2 litres"
	item, err := d.Item()
	require.NoError(t, err)
	assert.Equal(t, "Milk", item.Name)
	assert.False(t, item.Bought)
}

func TestCarDraft_RoundTrip(t *testing.T) {
	year, mileage := 2020, 50000
	car := models.Car{
		ID:             "car-1",
		Name:           "Toyota Corolla",
		Plate:          "AA-00-BB",
		Owner:          "Dad",
		Year:           &year,
		Color:          "Black",
		Mileage:        &mileage,
		NextService:    time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		NextInspection: time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
		FuelLevel:      75,
	}

	got, err := CarDraftFrom(car).Car()
	require.NoError(t, err)
	assert.Equal(t, car, got)
}

func TestCarDraft_Validate(t *testing.T) {
	d := NewCarDraft()
	d.Name, d.Plate = "Civic", "CC-11-DD"

	var verr *ValidationError
	require.ErrorAs(t, d.Validate(), &verr)
	assert.Equal(t, "owner", verr.Field)
	assert.Equal(t, requiredFields, verr.Reason)

	d.Owner = "Mum"
	d.Mileage = "lots"
	require.ErrorAs(t, d.Validate(), &verr)
	assert.Equal(t, "mileage", verr.Field)

	d.Mileage = ""
	d.FuelLevel = 120
	require.ErrorAs(t, d.Validate(), &verr)
	assert.Equal(t, "fuelLevel", verr.Field)

	d.FuelLevel = 0
	assert.NoError(t, d.Validate())
}

func TestCategoryDraft(t *testing.T) {
	d := CategoryDraft{Name: "Office", Icon: "rocket"}
	c, err := d.Category()
	require.NoError(t, err)
	assert.Equal(t, models.IconHome, c.Icon, "unknown icons fall back to home")
	assert.Zero(t, c.TaskCount)
	assert.Zero(t, c.CompletedCount)
}
