package dialogs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
)

func newTaskDialog(t *testing.T, commits *[]TaskDraft, rec *notify.Recorder) *Dialog[TaskDraft] {
	t.Helper()
	return New(NewTaskDraft, func(_ context.Context, d TaskDraft) error {
		*commits = append(*commits, d)
		return nil
	}, WithNotifier(rec))
}

func TestSubmit_InvalidDraftKeepsDialogOpen(t *testing.T) {
	var commits []TaskDraft
	var rec notify.Recorder
	dlg := newTaskDialog(t, &commits, &rec)
	dlg.Open()
	dlg.Edit(func(d *TaskDraft) { d.Name = "Mow the lawn" })

	err := dlg.Submit(context.Background())

	require.ErrorIs(t, err, ErrInvalid)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "assignedTo", verr.Field)
	assert.Empty(t, commits, "commit must not run")
	assert.True(t, dlg.IsOpen())
	assert.Equal(t, "Mow the lawn", dlg.Draft().Name, "draft is kept")

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, last.Level)
}

func TestSubmit_SuccessCommitsOnceResetsAndCloses(t *testing.T) {
	var commits []TaskDraft
	var rec notify.Recorder
	dlg := newTaskDialog(t, &commits, &rec)
	dlg.Open()
	dlg.Edit(func(d *TaskDraft) {
		d.Name = "Clean the pool"
		d.ToggleMember("Tom")
		d.Points = 25
	})

	require.NoError(t, dlg.Submit(context.Background()))

	require.Len(t, commits, 1)
	assert.Equal(t, "Clean the pool", commits[0].Name)
	assert.False(t, dlg.IsOpen())
	assert.Equal(t, NewTaskDraft(), dlg.Draft())
	assert.Empty(t, rec.All(), "no success message configured")
}

func TestSubmit_Closed(t *testing.T) {
	var commits []TaskDraft
	dlg := newTaskDialog(t, &commits, &notify.Recorder{})
	assert.ErrorIs(t, dlg.Submit(context.Background()), ErrClosed)
}

func TestSubmit_CommitFailureKeepsDraft(t *testing.T) {
	var rec notify.Recorder
	boom := errors.New("store unavailable")
	dlg := New(NewCategoryDraft, func(context.Context, CategoryDraft) error { return boom }, WithNotifier(&rec))
	dlg.OpenWith(CategoryDraft{Name: "Office", Icon: models.IconPackage})

	err := dlg.Submit(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.True(t, dlg.IsOpen())
	assert.Equal(t, "Office", dlg.Draft().Name)
	assert.Len(t, rec.All(), 1)
}

func TestSubmit_SuccessNotification(t *testing.T) {
	var rec notify.Recorder
	dlg := New(NewCarDraft, func(context.Context, CarDraft) error { return nil },
		WithNotifier(&rec), WithSuccess("Success", "car added"))
	dlg.OpenWith(CarDraft{Name: "Corolla", Plate: "AA-00-BB", Owner: "Dad", FuelLevel: 75})

	require.NoError(t, dlg.Submit(context.Background()))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.Success("Success", "car added"), last)
}

func TestCloseKeepsDraft(t *testing.T) {
	dlg := New(NewCategoryDraft, func(context.Context, CategoryDraft) error { return nil })
	dlg.Open()
	dlg.Edit(func(d *CategoryDraft) { d.Name = "Laundry" })
	dlg.Close()

	assert.False(t, dlg.IsOpen())
	assert.Equal(t, "Laundry", dlg.Draft().Name)

	dlg.Reset()
	assert.Equal(t, NewCategoryDraft(), dlg.Draft())
}
