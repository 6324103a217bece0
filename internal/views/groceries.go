package views

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

// GroceryView manages the shopping list and the multi-select used to mark
// several items bought at once.
type GroceryView struct {
	mu       sync.Mutex
	store    storage.Store
	family   []string
	selected []string
	env
}

func NewGroceryView(store storage.Store, family []string, opts ...Option) *GroceryView {
	return &GroceryView{
		store:  store,
		family: slices.Clone(family),
		env:    newEnv(opts),
	}
}

// List returns the items visible under tab, bought items last.
func (v *GroceryView) List(ctx context.Context, tab GroceryTab) ([]models.GroceryItem, error) {
	items, err := v.store.GroceryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grocery items: %w", err)
	}
	return FilterGroceries(items, tab), nil
}

func (v *GroceryView) Stats(ctx context.Context) (calculator.GroceryStats, error) {
	items, err := v.store.GroceryItems(ctx)
	if err != nil {
		return calculator.GroceryStats{}, fmt.Errorf("failed to load grocery items: %w", err)
	}
	return calculator.SummariseGroceries(items), nil
}

// Add appends a pending item built from draft.
func (v *GroceryView) Add(ctx context.Context, draft dialogs.ItemDraft) (models.GroceryItem, error) {
	item, err := draft.Item()
	if err != nil {
		return models.GroceryItem{}, err
	}

	var added models.GroceryItem
	err = v.mutate(ctx, func(items []models.GroceryItem) ([]models.GroceryItem, error) {
		next := records.Add(items, item, records.FreshID(items, v.newID))
		added = next[len(next)-1]
		return next, nil
	})
	return added, err
}

// NewDialog returns the add-item dialog. AddedBy defaults to the first
// family member.
func (v *GroceryView) NewDialog(onAdded ...func(models.GroceryItem)) *dialogs.Dialog[dialogs.ItemDraft] {
	return dialogs.New(
		func() dialogs.ItemDraft { return dialogs.NewItemDraft(v.family) },
		func(ctx context.Context, d dialogs.ItemDraft) error {
			item, err := v.Add(ctx, d)
			if err != nil {
				return err
			}
			for _, fn := range onAdded {
				fn(item)
			}
			return nil
		},
		dialogs.WithNotifier(v.notifier),
	)
}

func (v *GroceryView) ToggleBought(ctx context.Context, id string) (models.GroceryItem, error) {
	var toggled models.GroceryItem
	err := v.mutate(ctx, func(items []models.GroceryItem) ([]models.GroceryItem, error) {
		if !records.Contains(items, id) {
			return nil, records.ErrNotFound
		}
		next := records.Toggle(items, id, records.FieldBought)
		toggled, _ = records.Find(next, id)
		v.deselect(id)
		return next, nil
	})
	return toggled, err
}

// Select adds a pending item to the selection. Bought items cannot be selected.
func (v *GroceryView) Select(ctx context.Context, id string) error {
	items, err := v.store.GroceryItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load grocery items: %w", err)
	}
	item, err := records.Find(items, id)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !item.Bought && !slices.Contains(v.selected, id) {
		v.selected = append(v.selected, id)
	}
	return nil
}

func (v *GroceryView) Deselect(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deselect(id)
}

// ToggleSelect selects id, or deselects it if already selected.
func (v *GroceryView) ToggleSelect(ctx context.Context, id string) error {
	if v.IsSelected(id) {
		v.Deselect(id)
		return nil
	}
	return v.Select(ctx, id)
}

func (v *GroceryView) IsSelected(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Contains(v.selected, id)
}

// Selected returns the selected ids in selection order.
func (v *GroceryView) Selected() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.selected)
}

// MarkSelected marks every selected item bought and clears the selection.
// It returns how many items changed; an empty selection is a no-op.
func (v *GroceryView) MarkSelected(ctx context.Context) (int, error) {
	v.mu.Lock()
	ids := slices.Clone(v.selected)
	v.mu.Unlock()
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := v.MarkBought(ctx, ids)
	if err != nil {
		return 0, err
	}

	v.mu.Lock()
	v.selected = slices.DeleteFunc(v.selected, func(id string) bool { return slices.Contains(ids, id) })
	v.mu.Unlock()
	return n, nil
}

// MarkBought sets bought on every listed item. Unknown ids are ignored.
func (v *GroceryView) MarkBought(ctx context.Context, ids []string) (int, error) {
	var n int
	err := v.mutate(ctx, func(items []models.GroceryItem) ([]models.GroceryItem, error) {
		return records.UpdateWhere(items,
			func(item models.GroceryItem) bool {
				return !item.Bought && slices.Contains(ids, item.ID)
			},
			func(item models.GroceryItem) models.GroceryItem {
				n++
				item.Bought = true
				return item
			},
		), nil
	})
	return n, err
}

// ClearBought removes every bought item and returns how many were removed.
func (v *GroceryView) ClearBought(ctx context.Context) (int, error) {
	var n int
	err := v.mutate(ctx, func(items []models.GroceryItem) ([]models.GroceryItem, error) {
		next := records.Filter(items, func(item models.GroceryItem) bool { return !item.Bought })
		n = len(items) - len(next)
		return next, nil
	})
	return n, err
}

func (v *GroceryView) deselect(id string) {
	v.selected = slices.DeleteFunc(v.selected, func(s string) bool { return s == id })
}

func (v *GroceryView) mutate(ctx context.Context, fn func([]models.GroceryItem) ([]models.GroceryItem, error)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	items, err := v.store.GroceryItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load grocery items: %w", err)
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	if err := v.store.ReplaceGroceryItems(ctx, next); err != nil {
		return fmt.Errorf("failed to save grocery items: %w", err)
	}
	return nil
}
