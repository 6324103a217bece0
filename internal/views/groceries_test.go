package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

func grocerySnapshot() storage.Snapshot {
	return storage.Snapshot{GroceryItems: []models.GroceryItem{
		{ID: "milk", Name: "Milk", Category: models.GroceryFood, Quantity: "2 L", Priority: models.GroceryPriorityHigh, AddedBy: "Mum"},
		{ID: "bread", Name: "Bread", Category: models.GroceryFood, Quantity: "1", Priority: models.GroceryPriorityHigh, Bought: true, AddedBy: "Dad"},
		{ID: "soap", Name: "Soap", Category: models.GroceryHygiene, Quantity: "3", Priority: models.GroceryPriorityLow, AddedBy: "Tomas"},
	}}
}

func TestGroceryView_AddThroughDialog(t *testing.T) {
	ctx := context.Background()
	view := NewGroceryView(newStore(t, grocerySnapshot()), family, WithIDs(sequentialIDs()))

	dlg := view.NewDialog()
	assert.Equal(t, "Dad", dlg.Draft().AddedBy)
	assert.Equal(t, models.GroceryFood, dlg.Draft().Category)
	assert.Equal(t, models.GroceryPriorityLow, dlg.Draft().Priority)

	dlg.Open()
	dlg.Edit(func(d *dialogs.ItemDraft) { d.Name = "Eggs" })
	require.ErrorIs(t, dlg.Submit(ctx), dialogs.ErrInvalid, "quantity is required")

	dlg.Edit(func(d *dialogs.ItemDraft) { d.Quantity = "12" })
	require.NoError(t, dlg.Submit(ctx))

	items, err := view.List(ctx, GroceryTabAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "soap", "id-1", "bread"}, ids(items))
	assert.False(t, items[2].Bought)
	assert.Equal(t, "Dad", items[2].AddedBy)
}

func TestGroceryView_ToggleBought(t *testing.T) {
	ctx := context.Background()
	view := NewGroceryView(newStore(t, grocerySnapshot()), family)

	item, err := view.ToggleBought(ctx, "milk")
	require.NoError(t, err)
	assert.True(t, item.Bought)

	items, err := view.List(ctx, GroceryTabAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"soap", "milk", "bread"}, ids(items))

	high, err := view.List(ctx, GroceryTabHighPriority)
	require.NoError(t, err)
	assert.Empty(t, high)

	_, err = view.ToggleBought(ctx, "missing")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestGroceryView_MarkSelected(t *testing.T) {
	ctx := context.Background()
	view := NewGroceryView(newStore(t, grocerySnapshot()), family)

	require.NoError(t, view.Select(ctx, "soap"))
	require.NoError(t, view.Select(ctx, "milk"))
	require.NoError(t, view.Select(ctx, "milk"))
	require.NoError(t, view.Select(ctx, "bread"), "bought items are ignored")
	assert.ErrorIs(t, view.Select(ctx, "missing"), records.ErrNotFound)
	assert.Equal(t, []string{"soap", "milk"}, view.Selected())

	require.NoError(t, view.ToggleSelect(ctx, "soap"))
	assert.False(t, view.IsSelected("soap"))
	require.NoError(t, view.ToggleSelect(ctx, "soap"))

	n, err := view.MarkSelected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, view.Selected())

	stats, err := view.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Bought)
	assert.Equal(t, 0, stats.Pending)

	n, err = view.MarkSelected(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGroceryView_ClearBought(t *testing.T) {
	ctx := context.Background()
	view := NewGroceryView(newStore(t, grocerySnapshot()), family)

	n, err := view.ClearBought(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := view.List(ctx, GroceryTabAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "soap"}, ids(items))
}

func TestGroceryView_MarkBoughtIgnoresUnknown(t *testing.T) {
	ctx := context.Background()
	view := NewGroceryView(newStore(t, grocerySnapshot()), family)

	n, err := view.MarkBought(ctx, []string{"milk", "bread", "nope"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
