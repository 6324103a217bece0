package service

import (
	"context"
	"log/slog"
	"slices"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/views"
	"github.com/mmynk/homekeeper/pkg/api"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

// GroceryService implements the Connect GroceryService
type GroceryService struct {
	apiconnect.UnimplementedGroceryServiceHandler
	groceries *views.GroceryView
	family    []string
}

// NewGroceryService creates a new GroceryService. family supplies the default
// AddedBy of new items.
func NewGroceryService(groceries *views.GroceryView, family []string) *GroceryService {
	return &GroceryService{groceries: groceries, family: slices.Clone(family)}
}

// ListGroceryItems returns the shopping list under a tab, bought items last.
func (s *GroceryService) ListGroceryItems(ctx context.Context, req *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	slog.Info("ListGroceryItems request received", "tab", req.Msg.Tab)

	tab, err := views.ParseGroceryTab(req.Msg.Tab)
	if err != nil {
		return nil, invalidArgument(err)
	}

	items, err := s.groceries.List(ctx, tab)
	if err != nil {
		slog.Error("ListGroceryItems failed", "error", err)
		return nil, connectError(err)
	}
	stats, err := s.groceries.Stats(ctx)
	if err != nil {
		slog.Error("ListGroceryItems failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListGroceryItems successful", "count", len(items))

	return connect.NewResponse(&api.ListGroceryItemsResponse{
		Items: toAPIGroceryItems(items),
		Stats: toAPIGroceryStats(stats),
	}), nil
}

// AddGroceryItem submits the add-item dialog.
func (s *GroceryService) AddGroceryItem(ctx context.Context, req *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	slog.Info("AddGroceryItem request received", "name", req.Msg.Name, "category", req.Msg.Category)

	ctx, rec := collect(ctx)
	var added models.GroceryItem
	dlg := s.groceries.NewDialog(func(item models.GroceryItem) { added = item })
	dlg.OpenWith(itemDraft(req.Msg, s.family))

	if err := dlg.Submit(ctx); err != nil {
		slog.Error("AddGroceryItem failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Grocery item created", "item_id", added.ID)

	return connect.NewResponse(&api.AddGroceryItemResponse{
		Item:          toAPIGroceryItem(added),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// ToggleBought flips the bought flag of an item.
func (s *GroceryService) ToggleBought(ctx context.Context, req *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error) {
	slog.Info("ToggleBought request received", "item_id", req.Msg.Id)

	item, err := s.groceries.ToggleBought(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("ToggleBought failed", "item_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ToggleBoughtResponse{Item: toAPIGroceryItem(item)}), nil
}

// MarkBought marks several items bought at once.
func (s *GroceryService) MarkBought(ctx context.Context, req *connect.Request[api.MarkBoughtRequest]) (*connect.Response[api.MarkBoughtResponse], error) {
	slog.Info("MarkBought request received", "ids_count", len(req.Msg.Ids))

	n, err := s.groceries.MarkBought(ctx, req.Msg.Ids)
	if err != nil {
		slog.Error("MarkBought failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("MarkBought successful", "marked", n)

	return connect.NewResponse(&api.MarkBoughtResponse{Marked: n}), nil
}

// ClearBought removes every bought item.
func (s *GroceryService) ClearBought(ctx context.Context, req *connect.Request[api.ClearBoughtRequest]) (*connect.Response[api.ClearBoughtResponse], error) {
	slog.Info("ClearBought request received")

	n, err := s.groceries.ClearBought(ctx)
	if err != nil {
		slog.Error("ClearBought failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ClearBought successful", "removed", n)

	return connect.NewResponse(&api.ClearBoughtResponse{Removed: n}), nil
}
