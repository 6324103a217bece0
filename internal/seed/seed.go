// Package seed provides the demo household loaded into a fresh session.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/storage"
)

//go:embed household.yaml
var household []byte

type dataset struct {
	Categories []category `yaml:"categories"`
	Tasks      []task     `yaml:"tasks"`
	Items      []item     `yaml:"grocery_items"`
	Cars       []car      `yaml:"cars"`
}

type category struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Icon           string `yaml:"icon"`
	Description    string `yaml:"description"`
	TaskCount      int    `yaml:"task_count"`
	CompletedCount int    `yaml:"completed_count"`
}

type task struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Category       string   `yaml:"category"`
	AssignedTo     []string `yaml:"assigned_to"`
	Priority       string   `yaml:"priority"`
	DueIn          *int     `yaml:"due_in"`
	Points         int      `yaml:"points"`
	Completed      bool     `yaml:"completed"`
	NeedsAttention bool     `yaml:"needs_attention"`
	Comments       int      `yaml:"comments"`
}

type item struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Quantity string `yaml:"quantity"`
	Priority string `yaml:"priority"`
	Bought   bool   `yaml:"bought"`
	AddedBy  string `yaml:"added_by"`
}

type car struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Plate        string `yaml:"plate"`
	Owner        string `yaml:"owner"`
	Year         *int   `yaml:"year"`
	Color        string `yaml:"color"`
	Mileage      *int   `yaml:"mileage"`
	ServiceIn    int    `yaml:"service_in"`
	InspectionIn int    `yaml:"inspection_in"`
	FuelLevel    int    `yaml:"fuel_level"`
}

// Household returns the demo dataset with dates placed relative to now.
func Household(now time.Time) (storage.Snapshot, error) {
	return Parse(household, now)
}

// Parse decodes a YAML dataset. Date fields are day offsets from now.
func Parse(data []byte, now time.Time) (storage.Snapshot, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return storage.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var snap storage.Snapshot

	for _, c := range ds.Categories {
		snap.Categories = append(snap.Categories, models.Category{
			ID:             c.ID,
			Name:           c.Name,
			Icon:           models.ParseIcon(c.Icon),
			Description:    c.Description,
			TaskCount:      c.TaskCount,
			CompletedCount: c.CompletedCount,
		})
	}

	for _, t := range ds.Tasks {
		priority, err := models.ParsePriority(t.Priority)
		if err != nil {
			return storage.Snapshot{}, fmt.Errorf("task %s: %w", t.ID, err)
		}
		var due *time.Time
		if t.DueIn != nil {
			d := today.AddDate(0, 0, *t.DueIn)
			due = &d
		}
		snap.Tasks = append(snap.Tasks, models.Task{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			Category:       t.Category,
			AssignedTo:     t.AssignedTo,
			Priority:       priority,
			DueDate:        due,
			Points:         t.Points,
			Completed:      t.Completed,
			NeedsAttention: t.NeedsAttention,
			Comments:       t.Comments,
		})
	}

	for _, i := range ds.Items {
		category, err := models.ParseGroceryCategory(i.Category)
		if err != nil {
			return storage.Snapshot{}, fmt.Errorf("grocery item %s: %w", i.ID, err)
		}
		priority, err := models.ParseGroceryPriority(i.Priority)
		if err != nil {
			return storage.Snapshot{}, fmt.Errorf("grocery item %s: %w", i.ID, err)
		}
		snap.GroceryItems = append(snap.GroceryItems, models.GroceryItem{
			ID:       i.ID,
			Name:     i.Name,
			Category: category,
			Quantity: i.Quantity,
			Priority: priority,
			Bought:   i.Bought,
			AddedBy:  i.AddedBy,
		})
	}

	for _, c := range ds.Cars {
		snap.Cars = append(snap.Cars, models.Car{
			ID:             c.ID,
			Name:           c.Name,
			Plate:          c.Plate,
			Owner:          c.Owner,
			Year:           c.Year,
			Color:          c.Color,
			Mileage:        c.Mileage,
			NextService:    today.AddDate(0, 0, c.ServiceIn),
			NextInspection: today.AddDate(0, 0, c.InspectionIn),
			FuelLevel:      c.FuelLevel,
		})
	}

	return snap, nil
}
