package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/pkg/api"
)

// GroceryServiceName is the fully-qualified name of the GroceryService.
const GroceryServiceName = "homekeeper.v1.GroceryService"

// Procedure paths of the GroceryService.
const (
	GroceryServiceListGroceryItemsProcedure = "/homekeeper.v1.GroceryService/ListGroceryItems"
	GroceryServiceAddGroceryItemProcedure   = "/homekeeper.v1.GroceryService/AddGroceryItem"
	GroceryServiceToggleBoughtProcedure     = "/homekeeper.v1.GroceryService/ToggleBought"
	GroceryServiceMarkBoughtProcedure       = "/homekeeper.v1.GroceryService/MarkBought"
	GroceryServiceClearBoughtProcedure      = "/homekeeper.v1.GroceryService/ClearBought"
)

// GroceryServiceHandler serves the shopping list.
type GroceryServiceHandler interface {
	ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error)
	AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error)
	ToggleBought(context.Context, *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error)
	MarkBought(context.Context, *connect.Request[api.MarkBoughtRequest]) (*connect.Response[api.MarkBoughtResponse], error)
	ClearBought(context.Context, *connect.Request[api.ClearBoughtRequest]) (*connect.Response[api.ClearBoughtResponse], error)
}

// NewGroceryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroceryServiceHandler(svc GroceryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listGroceryItemsHandler := connect.NewUnaryHandler(
		GroceryServiceListGroceryItemsProcedure,
		svc.ListGroceryItems,
		opts...,
	)
	addGroceryItemHandler := connect.NewUnaryHandler(
		GroceryServiceAddGroceryItemProcedure,
		svc.AddGroceryItem,
		opts...,
	)
	toggleBoughtHandler := connect.NewUnaryHandler(
		GroceryServiceToggleBoughtProcedure,
		svc.ToggleBought,
		opts...,
	)
	markBoughtHandler := connect.NewUnaryHandler(
		GroceryServiceMarkBoughtProcedure,
		svc.MarkBought,
		opts...,
	)
	clearBoughtHandler := connect.NewUnaryHandler(
		GroceryServiceClearBoughtProcedure,
		svc.ClearBought,
		opts...,
	)
	return "/" + GroceryServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroceryServiceListGroceryItemsProcedure:
			listGroceryItemsHandler.ServeHTTP(w, r)
		case GroceryServiceAddGroceryItemProcedure:
			addGroceryItemHandler.ServeHTTP(w, r)
		case GroceryServiceToggleBoughtProcedure:
			toggleBoughtHandler.ServeHTTP(w, r)
		case GroceryServiceMarkBoughtProcedure:
			markBoughtHandler.ServeHTTP(w, r)
		case GroceryServiceClearBoughtProcedure:
			clearBoughtHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedGroceryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroceryServiceHandler struct{}

func (UnimplementedGroceryServiceHandler) ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.GroceryService.ListGroceryItems is not implemented"))
}

func (UnimplementedGroceryServiceHandler) AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.GroceryService.AddGroceryItem is not implemented"))
}

func (UnimplementedGroceryServiceHandler) ToggleBought(context.Context, *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.GroceryService.ToggleBought is not implemented"))
}

func (UnimplementedGroceryServiceHandler) MarkBought(context.Context, *connect.Request[api.MarkBoughtRequest]) (*connect.Response[api.MarkBoughtResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.GroceryService.MarkBought is not implemented"))
}

func (UnimplementedGroceryServiceHandler) ClearBought(context.Context, *connect.Request[api.ClearBoughtRequest]) (*connect.Response[api.ClearBoughtResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.GroceryService.ClearBought is not implemented"))
}

// GroceryServiceClient is a client for the GroceryService.
type GroceryServiceClient interface {
	ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error)
	AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error)
	ToggleBought(context.Context, *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error)
	MarkBought(context.Context, *connect.Request[api.MarkBoughtRequest]) (*connect.Response[api.MarkBoughtResponse], error)
	ClearBought(context.Context, *connect.Request[api.ClearBoughtRequest]) (*connect.Response[api.ClearBoughtResponse], error)
}

// NewGroceryServiceClient constructs a client for the GroceryService. baseURL is the
// server root, for example http://localhost:8080.
func NewGroceryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroceryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &groceryServiceClient{
		listGroceryItems: connect.NewClient[api.ListGroceryItemsRequest, api.ListGroceryItemsResponse](
			httpClient,
			baseURL+GroceryServiceListGroceryItemsProcedure,
			opts...,
		),
		addGroceryItem: connect.NewClient[api.AddGroceryItemRequest, api.AddGroceryItemResponse](
			httpClient,
			baseURL+GroceryServiceAddGroceryItemProcedure,
			opts...,
		),
		toggleBought: connect.NewClient[api.ToggleBoughtRequest, api.ToggleBoughtResponse](
			httpClient,
			baseURL+GroceryServiceToggleBoughtProcedure,
			opts...,
		),
		markBought: connect.NewClient[api.MarkBoughtRequest, api.MarkBoughtResponse](
			httpClient,
			baseURL+GroceryServiceMarkBoughtProcedure,
			opts...,
		),
		clearBought: connect.NewClient[api.ClearBoughtRequest, api.ClearBoughtResponse](
			httpClient,
			baseURL+GroceryServiceClearBoughtProcedure,
			opts...,
		),
	}
}

type groceryServiceClient struct {
	listGroceryItems *connect.Client[api.ListGroceryItemsRequest, api.ListGroceryItemsResponse]
	addGroceryItem   *connect.Client[api.AddGroceryItemRequest, api.AddGroceryItemResponse]
	toggleBought     *connect.Client[api.ToggleBoughtRequest, api.ToggleBoughtResponse]
	markBought       *connect.Client[api.MarkBoughtRequest, api.MarkBoughtResponse]
	clearBought      *connect.Client[api.ClearBoughtRequest, api.ClearBoughtResponse]
}

func (c *groceryServiceClient) ListGroceryItems(ctx context.Context, req *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	return c.listGroceryItems.CallUnary(ctx, req)
}

func (c *groceryServiceClient) AddGroceryItem(ctx context.Context, req *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	return c.addGroceryItem.CallUnary(ctx, req)
}

func (c *groceryServiceClient) ToggleBought(ctx context.Context, req *connect.Request[api.ToggleBoughtRequest]) (*connect.Response[api.ToggleBoughtResponse], error) {
	return c.toggleBought.CallUnary(ctx, req)
}

func (c *groceryServiceClient) MarkBought(ctx context.Context, req *connect.Request[api.MarkBoughtRequest]) (*connect.Response[api.MarkBoughtResponse], error) {
	return c.markBought.CallUnary(ctx, req)
}

func (c *groceryServiceClient) ClearBought(ctx context.Context, req *connect.Request[api.ClearBoughtRequest]) (*connect.Response[api.ClearBoughtResponse], error) {
	return c.clearBought.CallUnary(ctx, req)
}
