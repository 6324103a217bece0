package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/internal/seed"
	"github.com/mmynk/homekeeper/internal/storage"
	"github.com/mmynk/homekeeper/internal/storage/memory"
	"github.com/mmynk/homekeeper/internal/storage/sqlite"
	"github.com/mmynk/homekeeper/internal/tui"
	"github.com/mmynk/homekeeper/internal/views"
)

// openStore creates the session store named by cfg.Store and loads the demo
// household into it when cfg.Seed is set.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	var store storage.Store
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := sqlite.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = s
	default:
		store = memory.New()
	}
	slog.Info("Storage initialized", "store", cfg.Store)

	if !cfg.Seed {
		return store, nil
	}
	snap, err := seed.Household(time.Now())
	if err != nil {
		store.Close()
		return nil, err
	}
	if err := storage.Load(ctx, store, snap); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed storage: %w", err)
	}
	slog.Info("Demo household loaded",
		"tasks", len(snap.Tasks),
		"grocery_items", len(snap.GroceryItems),
		"categories", len(snap.Categories),
		"cars", len(snap.Cars),
	)
	return store, nil
}

// newApp builds the views over store.
func newApp(store storage.Store, cfg config.Config, opts ...views.Option) tui.App {
	members := cfg.Members()
	names := memberNames(cfg)
	return tui.App{
		Tasks:     views.NewTaskView(store, names, opts...),
		Groceries: views.NewGroceryView(store, names, opts...),
		Cars:      views.NewCarView(store, opts...),
		Dashboard: views.NewDashboard(store, members, opts...),
	}
}

// open is openStore followed by newApp. The returned func closes the store.
func open(ctx context.Context, cfg config.Config, opts ...views.Option) (tui.App, func(), error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return tui.App{}, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}
	return newApp(store, cfg, opts...), closeStore, nil
}

func memberNames(cfg config.Config) []string {
	members := cfg.Members()
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names
}
