package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/storage"
)

func TestDashboard_Overview(t *testing.T) {
	ctx := context.Background()
	snap := grocerySnapshot()
	snap.Categories = []models.Category{
		{ID: "1", Name: "Exterior", Icon: models.IconTrees, TaskCount: 8, CompletedCount: 3},
		{ID: "2", Name: "Interior", Icon: models.IconHome, TaskCount: 12, CompletedCount: 8},
		{ID: "3", Name: "Attic", Icon: models.IconPackage},
	}
	snap.Cars = carSnapshot().Cars
	members := []models.FamilyMember{
		models.NewFamilyMember("Tomas", 45),
		models.NewFamilyMember("Dad", 95),
		models.NewFamilyMember("Mum", 95),
	}
	dash := NewDashboard(newStore(t, snap), members, fixedClock("2026-01-01"))

	overview, err := dash.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Categories, 3)
	assert.Equal(t, 38, overview.Categories[0].Percent)
	assert.Equal(t, 67, overview.Categories[1].Percent)
	assert.Equal(t, 0, overview.Categories[2].Percent)
	assert.Equal(t, 20, overview.Totals.Tasks)
	assert.Equal(t, 11, overview.Totals.Completed)
	assert.Equal(t, 55, overview.Totals.Percent())

	assert.Equal(t, 3, overview.Groceries.Total)
	assert.Equal(t, 1, overview.Groceries.Bought)
	assert.Equal(t, 1, overview.Groceries.HighPriority)

	require.Len(t, overview.Leaderboard, 3)
	assert.Equal(t, "Dad", overview.Leaderboard[0].Name)
	assert.Equal(t, "Mum", overview.Leaderboard[1].Name)
	assert.Equal(t, "Tomas", overview.Leaderboard[2].Name)

	assert.Equal(t, 1, overview.CarAlerts, "only the low-fuel civic")
}

func TestDashboard_AddCategory(t *testing.T) {
	ctx := context.Background()
	dash := NewDashboard(newStore(t, storage.Snapshot{}), nil, WithIDs(sequentialIDs()))

	dlg := dash.NewCategoryDialog()
	dlg.Open()
	require.ErrorIs(t, dlg.Submit(ctx), dialogs.ErrInvalid)

	dlg.Edit(func(d *dialogs.CategoryDraft) {
		d.Name = "Laundry"
		d.Icon = models.IconSparkles
	})
	require.NoError(t, dlg.Submit(ctx))
	assert.Equal(t, models.IconHome, dlg.Draft().Icon, "draft resets to defaults")

	categories, err := dash.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, models.Category{ID: "id-1", Name: "Laundry", Icon: models.IconSparkles}, categories[0])
}
