package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// position keeps each sequence in insertion order.
const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    priority TEXT NOT NULL,
    due_date TEXT,
    points INTEGER NOT NULL,
    completed INTEGER NOT NULL,
    needs_attention INTEGER NOT NULL,
    comments INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS task_assignees (
    task_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (task_id, name),
    FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS grocery_items (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    quantity TEXT NOT NULL,
    priority TEXT NOT NULL,
    bought INTEGER NOT NULL,
    added_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    icon TEXT NOT NULL,
    description TEXT NOT NULL,
    task_count INTEGER NOT NULL,
    completed_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS cars (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    plate TEXT NOT NULL,
    owner TEXT NOT NULL,
    year INTEGER,
    color TEXT NOT NULL,
    mileage INTEGER,
    next_service TEXT,
    next_inspection TEXT,
    fuel_level INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);
CREATE INDEX IF NOT EXISTS idx_task_assignees_task_id ON task_assignees(task_id);
CREATE INDEX IF NOT EXISTS idx_grocery_items_position ON grocery_items(position);
CREATE INDEX IF NOT EXISTS idx_categories_position ON categories(position);
CREATE INDEX IF NOT EXISTS idx_cars_position ON cars(position);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
