package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/mmynk/homekeeper/internal/records"
)

// Priority ranks how urgent a chore is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every task priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority converts a raw string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !slices.Contains(Priorities, p) {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Task is a household chore inside a category.
type Task struct {
	// ID is the unique identifier for the task (UUIDv7 format).
	ID string

	// Name is the short title shown on the task card (e.g., "Mow the lawn").
	Name string

	// Description holds optional details.
	Description string

	// Category is the name of the house area the task belongs to.
	Category string

	// AssignedTo is the set of family member names responsible for the task.
	// Never empty for tasks created through the task dialog.
	AssignedTo []string

	// Priority is one of low, medium or high.
	Priority Priority

	// DueDate is optional; nil means the task is unscheduled.
	DueDate *time.Time

	// Points is the score awarded for completing the task.
	Points int

	// Completed is set once the task has been marked as done.
	Completed bool

	// NeedsAttention flags tasks that someone raised as problematic.
	NeedsAttention bool

	// Comments is the number of comments left on the task.
	Comments int
}

func (t Task) RecordID() string { return t.ID }

func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}

// Toggle flips the completed or needs-attention flag.
func (t Task) Toggle(field records.Field) (Task, bool) {
	switch field {
	case records.FieldCompleted:
		t.Completed = !t.Completed
	case records.FieldNeedsAttention:
		t.NeedsAttention = !t.NeedsAttention
	default:
		return t, false
	}
	return t, true
}

// IsAssignedTo reports whether member is one of the assignees.
func (t Task) IsAssignedTo(member string) bool {
	return slices.Contains(t.AssignedTo, member)
}

// Scheduled reports whether the task has a due date.
func (t Task) Scheduled() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}
