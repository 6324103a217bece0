package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homekeeper/internal/models"
)

// ReplaceGroceryItems rewrites the shopping list.
func (s *SQLiteStore) ReplaceGroceryItems(ctx context.Context, items []models.GroceryItem) error {
	return s.replace(ctx, []string{"grocery_items"}, func(tx *sql.Tx) error {
		for pos, item := range items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO grocery_items (id, position, name, category, quantity, priority, bought, added_by)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, pos, item.Name, string(item.Category), item.Quantity, string(item.Priority), item.Bought, item.AddedBy,
			)
			if err != nil {
				return fmt.Errorf("failed to insert grocery item: %w", err)
			}
		}
		return nil
	})
}

// GroceryItems retrieves the shopping list in order.
func (s *SQLiteStore) GroceryItems(ctx context.Context) ([]models.GroceryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, quantity, priority, bought, added_by FROM grocery_items ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery items: %w", err)
	}
	defer rows.Close()

	var items []models.GroceryItem
	for rows.Next() {
		var (
			item               models.GroceryItem
			category, priority string
		)
		if err := rows.Scan(&item.ID, &item.Name, &category, &item.Quantity, &priority, &item.Bought, &item.AddedBy); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		item.Category = models.GroceryCategory(category)
		item.Priority = models.GroceryPriority(priority)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grocery items: %w", err)
	}

	return items, nil
}
