// Package tui is the terminal front end: a bubbletea program over the views
// package, with one screen per router destination.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/views"
)

// App groups the views the terminal UI drives.
type App struct {
	Tasks     *views.TaskView
	Groceries *views.GroceryView
	Cars      *views.CarView
	Dashboard *views.Dashboard
}

type Model struct {
	ctx    context.Context
	app    App
	keys   config.Keymap
	router views.Router

	taskTab    views.TaskTab
	groceryTab views.GroceryTab

	overview     views.Overview
	tasks        []models.Task
	taskStats    calculator.TaskStats
	items        []models.GroceryItem
	groceryStats calculator.GroceryStats
	cars         []calculator.CarStatus

	cursor int
	input  textinput.Model
	form   *form

	// pendingDel is the id awaiting a y/n confirmation.
	pendingDel string

	status      string
	statusLevel notify.Level
}

// New builds the model on the dashboard and loads it.
func New(ctx context.Context, app App, keys config.Keymap) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		ctx:        ctx,
		app:        app,
		keys:       keys,
		taskTab:    views.TaskTabAll,
		groceryTab: views.GroceryTabAll,
		input:      ti,
		status:     fmt.Sprintf("Press '%s' to open an area, '%s' for groceries, '%s' for cars.", keys.Open, keys.Groceries, keys.Cars),
	}
	m.reload()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, app App, keys config.Keymap) error {
	program := tea.NewProgram(New(ctx, app, keys), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.pendingDel != "" {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateList(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-20, 10)
	}
	return m, nil
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.keys.Quit:
		return m, tea.Quit
	case m.keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, m.rowCount())
		return m, nil
	case m.keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, m.rowCount())
		return m, nil
	}

	switch m.router.Screen() {
	case views.ScreenCategory:
		return m.updateCategory(key)
	case views.ScreenGrocery:
		return m.updateGroceries(key)
	case views.ScreenCars:
		return m.updateCars(key)
	default:
		return m.updateDashboard(key)
	}
}

func (m Model) updateDashboard(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.keys.Open:
		if len(m.overview.Categories) == 0 {
			m.setStatus(notify.LevelInfo, "No areas yet")
			return m, nil
		}
		name := m.overview.Categories[m.cursor].Category.Name
		m.router.OpenCategory(name)
		m.taskTab = views.TaskTabAll
		m.navigate("Area: " + name)
	case m.keys.Groceries:
		m.router.OpenGroceries()
		m.groceryTab = views.GroceryTabAll
		m.navigate("Shopping list")
	case m.keys.Cars:
		m.router.OpenCars()
		m.navigate("Cars")
	case m.keys.Add:
		return m.openForm(categoryForm(m.app.Dashboard.NewCategoryDialog()))
	}
	return m, nil
}

func (m Model) updateCategory(key string) (tea.Model, tea.Cmd) {
	category := m.router.Category()
	switch key {
	case m.keys.Back:
		m.router.Back()
		m.navigate("Dashboard")
		return m, nil
	case m.keys.NextTab:
		m.taskTab = m.taskTab.Next()
		m.cursor = 0
		m.reload()
		return m, nil
	case m.keys.Add:
		return m.openForm(taskForm("New task", m.app.Tasks.NewDialog(category)))
	case m.keys.Assign:
		m.run(func(ctx context.Context) error {
			_, ok, err := m.app.Tasks.AssignRandom(ctx, category)
			if err == nil && !ok {
				m.setStatus(notify.LevelInfo, "No pending tasks to assign")
			}
			return err
		})
		return m, nil
	}

	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	switch key {
	case m.keys.Toggle:
		m.run(func(ctx context.Context) error {
			t, err := m.app.Tasks.ToggleComplete(ctx, task.ID)
			if err == nil {
				m.setStatus(notify.LevelInfo, fmt.Sprintf("%s: %s", t.Name, doneLabel(t.Completed)))
			}
			return err
		})
	case m.keys.Attention:
		m.run(func(ctx context.Context) error {
			_, err := m.app.Tasks.ToggleAttention(ctx, task.ID)
			return err
		})
	case m.keys.Edit:
		return m.openForm(taskForm("Edit task", m.app.Tasks.NewEditDialog(task)))
	case m.keys.Delete:
		m.pendingDel = task.ID
		m.setStatus(notify.LevelInfo, fmt.Sprintf("Delete %q? y/n", task.Name))
	}
	return m, nil
}

func (m Model) updateGroceries(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.keys.Back:
		m.router.Back()
		m.navigate("Dashboard")
		return m, nil
	case m.keys.NextTab:
		m.groceryTab = m.groceryTab.Next()
		m.cursor = 0
		m.reload()
		return m, nil
	case m.keys.Add:
		return m.openForm(itemForm(m.app.Groceries.NewDialog()))
	case m.keys.MarkAll:
		m.run(func(ctx context.Context) error {
			n, err := m.app.Groceries.MarkSelected(ctx)
			if err == nil {
				m.setStatus(notify.LevelSuccess, fmt.Sprintf("Marked %d item(s) bought", n))
			}
			return err
		})
		return m, nil
	case m.keys.Clear:
		m.run(func(ctx context.Context) error {
			n, err := m.app.Groceries.ClearBought(ctx)
			if err == nil {
				m.setStatus(notify.LevelSuccess, fmt.Sprintf("Removed %d bought item(s)", n))
			}
			return err
		})
		return m, nil
	}

	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	switch key {
	case m.keys.Toggle:
		m.run(func(ctx context.Context) error {
			_, err := m.app.Groceries.ToggleBought(ctx, item.ID)
			return err
		})
	case m.keys.Select:
		if item.Bought {
			m.setStatus(notify.LevelInfo, "Bought items cannot be selected")
			return m, nil
		}
		m.run(func(ctx context.Context) error {
			return m.app.Groceries.ToggleSelect(ctx, item.ID)
		})
	}
	return m, nil
}

func (m Model) updateCars(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.keys.Back:
		m.router.Back()
		m.navigate("Dashboard")
		return m, nil
	case m.keys.Add:
		return m.openForm(carForm("New car", m.app.Cars.NewAddDialog()))
	}

	if len(m.cars) == 0 {
		return m, nil
	}
	car := m.cars[m.cursor].Car
	switch key {
	case m.keys.Edit:
		return m.openForm(carForm("Edit car", m.app.Cars.NewEditDialog(car)))
	case m.keys.Delete:
		m.pendingDel = car.ID
		m.setStatus(notify.LevelInfo, fmt.Sprintf("Delete %q? y/n", car.Name))
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	id := m.pendingDel
	switch key {
	case "y", "Y":
		m.pendingDel = ""
		m.run(func(ctx context.Context) error {
			if m.router.Screen() == views.ScreenCars {
				return m.app.Cars.Delete(ctx, id)
			}
			m.setStatus(notify.LevelSuccess, "Task deleted")
			return m.app.Tasks.Delete(ctx, id)
		})
	case "n", "N", m.keys.Back:
		m.pendingDel = ""
		m.setStatus(notify.LevelInfo, "Delete cancelled")
	}
	return m, nil
}

// run performs one user action. The last notification raised by the views,
// or the error, becomes the status line; the current screen is reloaded.
func (m *Model) run(fn func(ctx context.Context) error) error {
	rec := &notify.Recorder{}
	err := fn(notify.WithNotifier(m.ctx, rec))
	if n, ok := rec.Last(); ok {
		m.setStatus(n.Level, n.Title+": "+n.Message)
	} else if err != nil {
		m.setStatus(notify.LevelError, err.Error())
	}
	m.reload()
	return err
}

func (m *Model) navigate(status string) {
	m.cursor = 0
	m.setStatus(notify.LevelInfo, status)
	m.reload()
}

func (m *Model) setStatus(level notify.Level, status string) {
	m.statusLevel = level
	m.status = status
}

// reload refreshes the rows of the current screen.
func (m *Model) reload() {
	var err error
	switch m.router.Screen() {
	case views.ScreenCategory:
		category := m.router.Category()
		if m.tasks, err = m.app.Tasks.List(m.ctx, category, m.taskTab); err == nil {
			m.taskStats, err = m.app.Tasks.Stats(m.ctx, category)
		}
	case views.ScreenGrocery:
		if m.items, err = m.app.Groceries.List(m.ctx, m.groceryTab); err == nil {
			m.groceryStats, err = m.app.Groceries.Stats(m.ctx)
		}
	case views.ScreenCars:
		m.cars, err = m.app.Cars.List(m.ctx)
	default:
		m.overview, err = m.app.Dashboard.Overview(m.ctx)
	}
	if err != nil {
		m.setStatus(notify.LevelError, fmt.Sprintf("reload failed: %v", err))
	}
	m.cursor = clampCursor(m.cursor, m.rowCount())
}

func (m Model) rowCount() int {
	switch m.router.Screen() {
	case views.ScreenCategory:
		return len(m.tasks)
	case views.ScreenGrocery:
		return len(m.items)
	case views.ScreenCars:
		return len(m.cars)
	default:
		return len(m.overview.Categories)
	}
}

func (m Model) currentTask() (models.Task, bool) {
	if len(m.tasks) == 0 {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m Model) currentItem() (models.GroceryItem, bool) {
	if len(m.items) == 0 {
		return models.GroceryItem{}, false
	}
	return m.items[m.cursor], true
}

func clampCursor(cur, n int) int {
	if n <= 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func doneLabel(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
