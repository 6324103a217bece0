package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/views"
	"github.com/mmynk/homekeeper/pkg/api"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

// DashboardService implements the Connect DashboardService
type DashboardService struct {
	apiconnect.UnimplementedDashboardServiceHandler
	dashboard *views.Dashboard
}

func NewDashboardService(dashboard *views.Dashboard) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

// GetOverview returns category progress, the grocery summary, the family
// leaderboard and the number of cars needing attention.
func (s *DashboardService) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	slog.Info("GetOverview request received")

	overview, err := s.dashboard.Overview(ctx)
	if err != nil {
		slog.Error("GetOverview failed", "error", err)
		return nil, connectError(err)
	}

	categories := make([]api.Category, len(overview.Categories))
	for i, p := range overview.Categories {
		categories[i] = toAPICategory(p.Category, p.Percent)
	}

	return connect.NewResponse(&api.GetOverviewResponse{
		Categories:     categories,
		TotalTasks:     overview.Totals.Tasks,
		CompletedTasks: overview.Totals.Completed,
		Percent:        overview.Totals.Percent(),
		Groceries:      toAPIGroceryStats(overview.Groceries),
		Leaderboard:    toAPIFamily(overview.Leaderboard),
		CarAlerts:      overview.CarAlerts,
	}), nil
}

// AddCategory submits the new-area dialog.
func (s *DashboardService) AddCategory(ctx context.Context, req *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error) {
	slog.Info("AddCategory request received", "name", req.Msg.Name, "icon", req.Msg.Icon)

	ctx, rec := collect(ctx)
	var added models.Category
	dlg := s.dashboard.NewCategoryDialog(func(c models.Category) { added = c })
	draft := dialogs.NewCategoryDraft()
	draft.Name = req.Msg.Name
	draft.Description = req.Msg.Description
	if req.Msg.Icon != "" {
		draft.Icon = models.ParseIcon(req.Msg.Icon)
	}
	dlg.OpenWith(draft)

	if err := dlg.Submit(ctx); err != nil {
		slog.Error("AddCategory failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Category created", "category_id", added.ID)

	return connect.NewResponse(&api.AddCategoryResponse{
		Category:      toAPICategory(added, 0),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}
