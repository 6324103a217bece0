// Package memory provides a slice-backed implementation of storage.Store.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps each sequence as an immutable slice. Replacing a sequence
// swaps the slice header; previously returned slices stay valid.
type MemoryStore struct {
	mu         sync.RWMutex
	tasks      []models.Task
	items      []models.GroceryItem
	categories []models.Category
	cars       []models.Car
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Tasks(context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks, nil
}

func (s *MemoryStore) ReplaceTasks(_ context.Context, tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	return nil
}

func (s *MemoryStore) GroceryItems(context.Context) ([]models.GroceryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, nil
}

func (s *MemoryStore) ReplaceGroceryItems(_ context.Context, items []models.GroceryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

func (s *MemoryStore) Categories(context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories, nil
}

func (s *MemoryStore) ReplaceCategories(_ context.Context, categories []models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
	return nil
}

func (s *MemoryStore) Cars(context.Context) ([]models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cars, nil
}

func (s *MemoryStore) ReplaceCars(_ context.Context, cars []models.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = cars
	return nil
}

// Close drops every sequence.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks, s.items, s.categories, s.cars = nil, nil, nil, nil
	return nil
}
