package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/pkg/api"
)

// DashboardServiceName is the fully-qualified name of the DashboardService.
const DashboardServiceName = "homekeeper.v1.DashboardService"

// Procedure paths of the DashboardService.
const (
	DashboardServiceGetOverviewProcedure = "/homekeeper.v1.DashboardService/GetOverview"
	DashboardServiceAddCategoryProcedure = "/homekeeper.v1.DashboardService/AddCategory"
)

// DashboardServiceHandler serves the dashboard overview and categories.
type DashboardServiceHandler interface {
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
	AddCategory(context.Context, *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getOverviewHandler := connect.NewUnaryHandler(
		DashboardServiceGetOverviewProcedure,
		svc.GetOverview,
		opts...,
	)
	addCategoryHandler := connect.NewUnaryHandler(
		DashboardServiceAddCategoryProcedure,
		svc.AddCategory,
		opts...,
	)
	return "/" + DashboardServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case DashboardServiceGetOverviewProcedure:
			getOverviewHandler.ServeHTTP(w, r)
		case DashboardServiceAddCategoryProcedure:
			addCategoryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedDashboardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedDashboardServiceHandler struct{}

func (UnimplementedDashboardServiceHandler) GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.DashboardService.GetOverview is not implemented"))
}

func (UnimplementedDashboardServiceHandler) AddCategory(context.Context, *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.DashboardService.AddCategory is not implemented"))
}

// DashboardServiceClient is a client for the DashboardService.
type DashboardServiceClient interface {
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
	AddCategory(context.Context, *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error)
}

// NewDashboardServiceClient constructs a client for the DashboardService. baseURL is the
// server root, for example http://localhost:8080.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &dashboardServiceClient{
		getOverview: connect.NewClient[api.GetOverviewRequest, api.GetOverviewResponse](
			httpClient,
			baseURL+DashboardServiceGetOverviewProcedure,
			opts...,
		),
		addCategory: connect.NewClient[api.AddCategoryRequest, api.AddCategoryResponse](
			httpClient,
			baseURL+DashboardServiceAddCategoryProcedure,
			opts...,
		),
	}
}

type dashboardServiceClient struct {
	getOverview *connect.Client[api.GetOverviewRequest, api.GetOverviewResponse]
	addCategory *connect.Client[api.AddCategoryRequest, api.AddCategoryResponse]
}

func (c *dashboardServiceClient) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return c.getOverview.CallUnary(ctx, req)
}

func (c *dashboardServiceClient) AddCategory(ctx context.Context, req *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error) {
	return c.addCategory.CallUnary(ctx, req)
}
