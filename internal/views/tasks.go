package views

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

// TaskView manages the task sequence. Category arguments scope an operation
// to one category; the empty string means every category.
type TaskView struct {
	mu     sync.Mutex
	store  storage.Store
	family []string
	env
}

func NewTaskView(store storage.Store, family []string, opts ...Option) *TaskView {
	return &TaskView{
		store:  store,
		family: slices.Clone(family),
		env:    newEnv(opts),
	}
}

func inCategory(category string) func(models.Task) bool {
	return func(t models.Task) bool {
		return category == "" || t.Category == category
	}
}

// List returns the tasks of category visible under tab.
func (v *TaskView) List(ctx context.Context, category string, tab TaskTab) ([]models.Task, error) {
	tasks, err := v.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return FilterTasks(records.Filter(tasks, inCategory(category)), tab), nil
}

// Stats counts the tasks of category per tab.
func (v *TaskView) Stats(ctx context.Context, category string) (calculator.TaskStats, error) {
	tasks, err := v.List(ctx, category, TaskTabAll)
	if err != nil {
		return calculator.TaskStats{}, err
	}
	return calculator.SummariseTasks(tasks), nil
}

func (v *TaskView) Get(ctx context.Context, id string) (models.Task, error) {
	tasks, err := v.store.Tasks(ctx)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	return records.Find(tasks, id)
}

// Add creates a pending task in category from a validated draft.
func (v *TaskView) Add(ctx context.Context, category string, draft dialogs.TaskDraft) (models.Task, error) {
	task, err := draft.Task(category)
	if err != nil {
		return models.Task{}, err
	}

	var added models.Task
	err = v.mutate(ctx, func(tasks []models.Task) ([]models.Task, error) {
		id := records.FreshID(tasks, v.newID)
		next := records.Add(tasks, task, id)
		added = next[len(next)-1]
		return next, nil
	})
	return added, err
}

// NewDialog returns the new-task dialog for category. onAdded runs after
// each successful commit.
func (v *TaskView) NewDialog(category string, onAdded ...func(models.Task)) *dialogs.Dialog[dialogs.TaskDraft] {
	return dialogs.New(dialogs.NewTaskDraft,
		func(ctx context.Context, d dialogs.TaskDraft) error {
			task, err := v.Add(ctx, category, d)
			if err != nil {
				return err
			}
			for _, fn := range onAdded {
				fn(task)
			}
			return nil
		},
		dialogs.WithNotifier(v.notifier),
	)
}

// Edit rewrites the task's editable fields from draft. Status flags, category
// and comment count are kept.
func (v *TaskView) Edit(ctx context.Context, id string, draft dialogs.TaskDraft) (models.Task, error) {
	if err := draft.Validate(); err != nil {
		return models.Task{}, err
	}

	var edited models.Task
	err := v.mutate(ctx, func(tasks []models.Task) ([]models.Task, error) {
		cur, err := records.Find(tasks, id)
		if err != nil {
			return nil, err
		}
		rec, err := draft.Task(cur.Category)
		if err != nil {
			return nil, err
		}
		rec.ID = cur.ID
		rec.Completed = cur.Completed
		rec.NeedsAttention = cur.NeedsAttention
		rec.Comments = cur.Comments
		edited = rec
		return records.Edit(tasks, rec), nil
	})
	return edited, err
}

// NewEditDialog returns the edit dialog opened on task.
func (v *TaskView) NewEditDialog(task models.Task, onSaved ...func(models.Task)) *dialogs.Dialog[dialogs.TaskDraft] {
	dlg := dialogs.New(dialogs.NewTaskDraft,
		func(ctx context.Context, d dialogs.TaskDraft) error {
			edited, err := v.Edit(ctx, task.ID, d)
			if err != nil {
				return err
			}
			for _, fn := range onSaved {
				fn(edited)
			}
			return nil
		},
		dialogs.WithNotifier(v.notifier),
	)
	dlg.OpenWith(dialogs.TaskDraftFrom(task))
	return dlg
}

// Delete removes the task. Unknown ids are ignored.
func (v *TaskView) Delete(ctx context.Context, id string) error {
	return v.mutate(ctx, func(tasks []models.Task) ([]models.Task, error) {
		return records.Remove(tasks, id), nil
	})
}

func (v *TaskView) ToggleComplete(ctx context.Context, id string) (models.Task, error) {
	return v.toggle(ctx, id, records.FieldCompleted)
}

func (v *TaskView) ToggleAttention(ctx context.Context, id string) (models.Task, error) {
	return v.toggle(ctx, id, records.FieldNeedsAttention)
}

func (v *TaskView) toggle(ctx context.Context, id string, field records.Field) (models.Task, error) {
	var toggled models.Task
	err := v.mutate(ctx, func(tasks []models.Task) ([]models.Task, error) {
		if !records.Contains(tasks, id) {
			return nil, records.ErrNotFound
		}
		next := records.Toggle(tasks, id, field)
		toggled, _ = records.Find(next, id)
		return next, nil
	})
	return toggled, err
}

// AssignRandom hands a random pending task of category to a random family
// member, replacing its assignees. It reports false when there is nothing to
// assign.
func (v *TaskView) AssignRandom(ctx context.Context, category string) (models.Task, bool, error) {
	if len(v.family) == 0 {
		return models.Task{}, false, nil
	}

	var (
		assigned models.Task
		ok       bool
	)
	err := v.mutate(ctx, func(tasks []models.Task) ([]models.Task, error) {
		pending := records.Filter(tasks, func(t models.Task) bool {
			return inCategory(category)(t) && !t.Completed
		})
		if len(pending) == 0 {
			return tasks, nil
		}

		pick := pending[v.intn(len(pending))]
		member := v.family[v.intn(len(v.family))]
		next := records.Update(tasks, pick.ID, func(t models.Task) models.Task {
			t.AssignedTo = []string{member}
			return t
		})
		assigned, _ = records.Find(next, pick.ID)
		ok = true
		return next, nil
	})
	if err != nil || !ok {
		return models.Task{}, false, err
	}

	v.notifier.Notify(ctx, notify.Info("Task assigned",
		fmt.Sprintf("%s was assigned to %s", assigned.Name, assigned.AssignedTo[0])))
	return assigned, true, nil
}

// mutate runs one read-modify-write cycle on the task sequence. fn returning
// an error leaves the sequence untouched.
func (v *TaskView) mutate(ctx context.Context, fn func([]models.Task) ([]models.Task, error)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tasks, err := v.store.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	if err := v.store.ReplaceTasks(ctx, next); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
