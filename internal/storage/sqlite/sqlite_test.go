package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

func intPtr(n int) *int { return &n }

func date(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSQLiteStore(t *testing.T) {
	store, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("empty store returns no records", func(t *testing.T) {
		tasks, err := store.Tasks(ctx)
		if err != nil {
			t.Fatalf("Tasks failed: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("Expected no tasks, got %d", len(tasks))
		}
	})

	t.Run("tasks round-trip in order with assignees", func(t *testing.T) {
		due := date("2026-03-01")
		original := []models.Task{
			{
				ID: "t2", Name: "Mow the lawn", Description: "Front and back", Category: "Exterior",
				AssignedTo: []string{"Tomas", "Dad"}, Priority: models.PriorityHigh, DueDate: &due,
				Points: 20, Comments: 2,
			},
			{
				ID: "t1", Name: "Empty dishwasher", Category: "Kitchen",
				AssignedTo: []string{"Marta"}, Priority: models.PriorityLow, Points: 5,
				Completed: true, NeedsAttention: true,
			},
		}

		if err := store.ReplaceTasks(ctx, original); err != nil {
			t.Fatalf("ReplaceTasks failed: %v", err)
		}

		got, err := store.Tasks(ctx)
		if err != nil {
			t.Fatalf("Tasks failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 tasks, got %d", len(got))
		}
		if got[0].ID != "t2" || got[1].ID != "t1" {
			t.Errorf("Expected order [t2 t1], got [%s %s]", got[0].ID, got[1].ID)
		}
		if len(got[0].AssignedTo) != 2 || got[0].AssignedTo[0] != "Tomas" || got[0].AssignedTo[1] != "Dad" {
			t.Errorf("Expected assignees [Tomas Dad], got %v", got[0].AssignedTo)
		}
		if got[0].DueDate == nil || !got[0].DueDate.Equal(due) {
			t.Errorf("Expected due date %v, got %v", due, got[0].DueDate)
		}
		if got[1].DueDate != nil {
			t.Errorf("Expected no due date, got %v", got[1].DueDate)
		}
		if got[0].Priority != models.PriorityHigh || got[0].Points != 20 || got[0].Comments != 2 {
			t.Errorf("Unexpected task fields: %+v", got[0])
		}
		if !got[1].Completed || !got[1].NeedsAttention {
			t.Errorf("Expected flags to survive, got %+v", got[1])
		}
	})

	t.Run("replace overwrites previous sequence", func(t *testing.T) {
		tasks, err := store.Tasks(ctx)
		if err != nil {
			t.Fatalf("Tasks failed: %v", err)
		}

		next := records.Remove(tasks, "t2")
		if err := store.ReplaceTasks(ctx, next); err != nil {
			t.Fatalf("ReplaceTasks failed: %v", err)
		}

		got, err := store.Tasks(ctx)
		if err != nil {
			t.Fatalf("Tasks failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "t1" {
			t.Errorf("Expected only t1, got %+v", got)
		}
	})

	t.Run("grocery items round-trip", func(t *testing.T) {
		items := []models.GroceryItem{
			{ID: "g1", Name: "Milk", Category: models.GroceryFood, Quantity: "2 L", Priority: models.GroceryPriorityHigh, AddedBy: "Mum"},
			{ID: "g2", Name: "Detergent", Category: models.GroceryCleaning, Quantity: "1", Priority: models.GroceryPriorityLow, Bought: true, AddedBy: "Dad"},
		}
		if err := store.ReplaceGroceryItems(ctx, items); err != nil {
			t.Fatalf("ReplaceGroceryItems failed: %v", err)
		}

		got, err := store.GroceryItems(ctx)
		if err != nil {
			t.Fatalf("GroceryItems failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(got))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Errorf("Item %d: expected %+v, got %+v", i, items[i], got[i])
			}
		}
	})

	t.Run("categories round-trip with icon fallback", func(t *testing.T) {
		categories := []models.Category{
			{ID: "c1", Name: "Exterior", Icon: models.IconTrees, Description: "Garden", TaskCount: 8, CompletedCount: 3},
			{ID: "c2", Name: "Attic", Icon: models.Icon("rocket")},
		}
		if err := store.ReplaceCategories(ctx, categories); err != nil {
			t.Fatalf("ReplaceCategories failed: %v", err)
		}

		got, err := store.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 categories, got %d", len(got))
		}
		if got[0] != categories[0] {
			t.Errorf("Expected %+v, got %+v", categories[0], got[0])
		}
		if got[1].Icon != models.IconHome {
			t.Errorf("Expected unknown icon to read back as home, got %q", got[1].Icon)
		}
	})

	t.Run("cars round-trip with optional fields", func(t *testing.T) {
		cars := []models.Car{
			{
				ID: "car1", Name: "Corolla", Plate: "AA-00-BB", Owner: "Dad",
				Year: intPtr(2018), Color: "Grey", Mileage: intPtr(84000),
				NextService: date("2026-11-01"), NextInspection: date("2027-02-15"), FuelLevel: 20,
			},
			{ID: "car2", Name: "Civic", Plate: "CC-11-DD", Owner: "Mum", FuelLevel: 100},
		}
		if err := store.ReplaceCars(ctx, cars); err != nil {
			t.Fatalf("ReplaceCars failed: %v", err)
		}

		got, err := store.Cars(ctx)
		if err != nil {
			t.Fatalf("Cars failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 cars, got %d", len(got))
		}
		if got[0].Year == nil || *got[0].Year != 2018 || got[0].Mileage == nil || *got[0].Mileage != 84000 {
			t.Errorf("Expected year and mileage to survive, got %+v", got[0])
		}
		if !got[0].NextService.Equal(cars[0].NextService) || !got[0].NextInspection.Equal(cars[0].NextInspection) {
			t.Errorf("Expected dates to survive, got %v / %v", got[0].NextService, got[0].NextInspection)
		}
		if got[1].Year != nil || got[1].Mileage != nil {
			t.Errorf("Expected nil year and mileage, got %+v", got[1])
		}
		if !got[1].NextService.IsZero() || !got[1].NextInspection.IsZero() {
			t.Errorf("Expected zero dates, got %v / %v", got[1].NextService, got[1].NextInspection)
		}
	})
}

func TestSQLiteStore_Load(t *testing.T) {
	store, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	err = storage.Load(ctx, store, storage.Snapshot{
		Tasks:        []models.Task{{ID: "t1", Name: "Sweep", Priority: models.PriorityMedium, AssignedTo: []string{"Ines"}}},
		GroceryItems: []models.GroceryItem{{ID: "g1", Name: "Bread", Category: models.GroceryFood, Priority: models.GroceryPriorityLow}},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tasks, _ := store.Tasks(ctx)
	items, _ := store.GroceryItems(ctx)
	cars, _ := store.Cars(ctx)
	if len(tasks) != 1 || len(items) != 1 || len(cars) != 0 {
		t.Errorf("Unexpected counts: tasks=%d items=%d cars=%d", len(tasks), len(items), len(cars))
	}
}

func TestSQLiteStore_TaskFromDraftWithRepeatedAssignees(t *testing.T) {
	store, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	draft := dialogs.TaskDraft{
		Name:       "Vacuum",
		AssignedTo: []string{"Mum", "Mum"},
		Priority:   models.PriorityLow,
		Points:     10,
	}
	task, err := draft.Task("Living Room")
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	task.ID = "t1"

	ctx := context.Background()
	if err := store.ReplaceTasks(ctx, []models.Task{task}); err != nil {
		t.Fatalf("ReplaceTasks failed: %v", err)
	}

	got, err := store.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(got) != 1 || len(got[0].AssignedTo) != 1 || got[0].AssignedTo[0] != "Mum" {
		t.Errorf("Expected one task assigned to Mum, got %+v", got)
	}
}

func TestNew_IsolatedDatabases(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer a.Close()
	b, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer b.Close()

	ctx := context.Background()
	if err := a.ReplaceCars(ctx, []models.Car{{ID: "car1", Name: "Corolla"}}); err != nil {
		t.Fatalf("ReplaceCars failed: %v", err)
	}

	cars, err := b.Cars(ctx)
	if err != nil {
		t.Fatalf("Cars failed: %v", err)
	}
	if len(cars) != 0 {
		t.Errorf("Expected second store to be empty, got %d cars", len(cars))
	}
}
