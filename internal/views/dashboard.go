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

// Overview is everything the dashboard shows.
type Overview struct {
	Categories  []calculator.CategoryProgress
	Totals      calculator.CategoryTotals
	Groceries   calculator.GroceryStats
	Leaderboard []models.FamilyMember
	// CarAlerts counts cars with at least one alert.
	CarAlerts int
}

// Dashboard manages the categories and summarises the other sequences.
type Dashboard struct {
	mu     sync.Mutex
	store  storage.Store
	family []models.FamilyMember
	env
}

func NewDashboard(store storage.Store, family []models.FamilyMember, opts ...Option) *Dashboard {
	return &Dashboard{
		store:  store,
		family: slices.Clone(family),
		env:    newEnv(opts),
	}
}

// Overview computes the dashboard. Category progress comes from the stored
// counters; the grocery summary is derived from the shopping list.
func (d *Dashboard) Overview(ctx context.Context) (Overview, error) {
	categories, err := d.store.Categories(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load categories: %w", err)
	}
	items, err := d.store.GroceryItems(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load grocery items: %w", err)
	}
	cars, err := d.store.Cars(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load cars: %w", err)
	}

	var overview Overview
	overview.Categories, overview.Totals = calculator.SummariseCategories(categories)
	overview.Groceries = calculator.SummariseGroceries(items)
	overview.Leaderboard = calculator.Leaderboard(d.family)
	for _, status := range calculator.EvaluateCars(cars, d.now()) {
		if status.NeedsAttention() {
			overview.CarAlerts++
		}
	}
	return overview, nil
}

func (d *Dashboard) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := d.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// Family returns the configured members in leaderboard order.
func (d *Dashboard) Family() []models.FamilyMember {
	return calculator.Leaderboard(d.family)
}

// AddCategory appends a category with zeroed counters.
func (d *Dashboard) AddCategory(ctx context.Context, draft dialogs.CategoryDraft) (models.Category, error) {
	category, err := draft.Category()
	if err != nil {
		return models.Category{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	categories, err := d.store.Categories(ctx)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to load categories: %w", err)
	}
	next := records.Add(categories, category, records.FreshID(categories, d.newID))
	if err := d.store.ReplaceCategories(ctx, next); err != nil {
		return models.Category{}, fmt.Errorf("failed to save categories: %w", err)
	}
	return next[len(next)-1], nil
}

// NewCategoryDialog returns the new-area dialog.
func (d *Dashboard) NewCategoryDialog(onAdded ...func(models.Category)) *dialogs.Dialog[dialogs.CategoryDraft] {
	return dialogs.New(dialogs.NewCategoryDraft,
		func(ctx context.Context, draft dialogs.CategoryDraft) error {
			category, err := d.AddCategory(ctx, draft)
			if err != nil {
				return err
			}
			for _, fn := range onAdded {
				fn(category)
			}
			return nil
		},
		dialogs.WithNotifier(d.notifier),
	)
}
