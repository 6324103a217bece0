package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

func TestMemoryStore_ReplaceKeepsOldVersions(t *testing.T) {
	ctx := context.Background()
	store := New()

	v1 := []models.GroceryItem{{ID: "1", Name: "Milk"}}
	require.NoError(t, store.ReplaceGroceryItems(ctx, v1))

	got, err := store.GroceryItems(ctx)
	require.NoError(t, err)

	v2 := records.Toggle(got, "1", records.FieldBought)
	require.NoError(t, store.ReplaceGroceryItems(ctx, v2))

	assert.False(t, got[0].Bought, "earlier reader still sees its version")
	now, err := store.GroceryItems(ctx)
	require.NoError(t, err)
	assert.True(t, now[0].Bought)
}

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, storage.Load(ctx, store, storage.Snapshot{
		Tasks:      []models.Task{{ID: "t1"}},
		Categories: []models.Category{{ID: "c1"}, {ID: "c2"}},
		Cars:       []models.Car{{ID: "car1"}},
	}))

	tasks, _ := store.Tasks(ctx)
	categories, _ := store.Categories(ctx)
	cars, _ := store.Cars(ctx)
	items, _ := store.GroceryItems(ctx)
	assert.Len(t, tasks, 1)
	assert.Len(t, categories, 2)
	assert.Len(t, cars, 1)
	assert.Empty(t, items)

	require.NoError(t, store.Close())
	tasks, _ = store.Tasks(ctx)
	assert.Empty(t, tasks)
}
