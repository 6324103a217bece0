// Package storage provides abstractions over the record sequences a household
// session owns.
package storage

import (
	"context"

	"github.com/mmynk/homekeeper/internal/models"
)

// Store holds the current version of every record sequence.
// This abstraction allows swapping the backing (plain slices, SQLite, etc.)
// without changing the view layer.
//
// Sequences are replaced wholesale: readers get the current version, views
// compute the next version with the reducers in package records and hand it
// back through a Replace method. Callers must not modify returned slices.
// Stores are session-scoped: nothing is kept once the store is closed.
type Store interface {
	// Tasks returns the task sequence in order.
	Tasks(ctx context.Context) ([]models.Task, error)
	// ReplaceTasks swaps in a new task sequence.
	ReplaceTasks(ctx context.Context, tasks []models.Task) error

	GroceryItems(ctx context.Context) ([]models.GroceryItem, error)
	ReplaceGroceryItems(ctx context.Context, items []models.GroceryItem) error

	Categories(ctx context.Context) ([]models.Category, error)
	ReplaceCategories(ctx context.Context, categories []models.Category) error

	Cars(ctx context.Context) ([]models.Car, error)
	ReplaceCars(ctx context.Context, cars []models.Car) error

	// Close releases any resources held by the store.
	Close() error
}

// Snapshot is a full copy of every sequence, used to seed a store.
type Snapshot struct {
	Tasks        []models.Task
	GroceryItems []models.GroceryItem
	Categories   []models.Category
	Cars         []models.Car
}

// Load replaces every sequence in store with the ones in snap.
func Load(ctx context.Context, store Store, snap Snapshot) error {
	if err := store.ReplaceTasks(ctx, snap.Tasks); err != nil {
		return err
	}
	if err := store.ReplaceGroceryItems(ctx, snap.GroceryItems); err != nil {
		return err
	}
	if err := store.ReplaceCategories(ctx, snap.Categories); err != nil {
		return err
	}
	return store.ReplaceCars(ctx, snap.Cars)
}
