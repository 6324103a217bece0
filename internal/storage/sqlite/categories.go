package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homekeeper/internal/models"
)

// ReplaceCategories rewrites the dashboard categories.
func (s *SQLiteStore) ReplaceCategories(ctx context.Context, categories []models.Category) error {
	return s.replace(ctx, []string{"categories"}, func(tx *sql.Tx) error {
		for pos, c := range categories {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO categories (id, position, name, icon, description, task_count, completed_count)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				c.ID, pos, c.Name, string(c.Icon), c.Description, c.TaskCount, c.CompletedCount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert category: %w", err)
			}
		}
		return nil
	})
}

// Categories retrieves the categories in order.
func (s *SQLiteStore) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, icon, description, task_count, completed_count FROM categories ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var (
			c    models.Category
			icon string
		)
		if err := rows.Scan(&c.ID, &c.Name, &icon, &c.Description, &c.TaskCount, &c.CompletedCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Icon = models.ParseIcon(icon)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
