package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homekeeper/internal/models"
)

// ReplaceTasks rewrites the task sequence and its assignees.
func (s *SQLiteStore) ReplaceTasks(ctx context.Context, tasks []models.Task) error {
	return s.replace(ctx, []string{"task_assignees", "tasks"}, func(tx *sql.Tx) error {
		for pos, task := range tasks {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (id, position, name, description, category, priority, due_date, points, completed, needs_attention, comments)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				task.ID, pos, task.Name, task.Description, task.Category, string(task.Priority),
				nullDate(task.DueDate), task.Points, task.Completed, task.NeedsAttention, task.Comments,
			)
			if err != nil {
				return fmt.Errorf("failed to insert task: %w", err)
			}

			for i, name := range task.AssignedTo {
				_, err = tx.ExecContext(ctx,
					"INSERT INTO task_assignees (task_id, position, name) VALUES (?, ?, ?)",
					task.ID, i, name,
				)
				if err != nil {
					return fmt.Errorf("failed to insert task assignee: %w", err)
				}
			}
		}
		return nil
	})
}

// Tasks retrieves the task sequence, including assignees.
func (s *SQLiteStore) Tasks(ctx context.Context) ([]models.Task, error) {
	assignees, err := s.taskAssignees(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, category, priority, due_date, points, completed, needs_attention, comments
		 FROM tasks ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			task     models.Task
			priority string
			due      sql.NullString
		)
		if err := rows.Scan(&task.ID, &task.Name, &task.Description, &task.Category, &priority,
			&due, &task.Points, &task.Completed, &task.NeedsAttention, &task.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Priority = models.Priority(priority)
		if task.DueDate, err = scanDate(due); err != nil {
			return nil, fmt.Errorf("failed to parse due date of task %s: %w", task.ID, err)
		}
		task.AssignedTo = assignees[task.ID]
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// taskAssignees reads every assignee up front; the pool holds a single
// connection, so nested queries would block.
func (s *SQLiteStore) taskAssignees(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT task_id, name FROM task_assignees ORDER BY task_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get task assignees: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var taskID, name string
		if err := rows.Scan(&taskID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan task assignee: %w", err)
		}
		out[taskID] = append(out[taskID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task assignees: %w", err)
	}
	return out, nil
}
