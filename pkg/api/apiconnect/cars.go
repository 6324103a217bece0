package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/pkg/api"
)

// CarServiceName is the fully-qualified name of the CarService.
const CarServiceName = "homekeeper.v1.CarService"

// Procedure paths of the CarService.
const (
	CarServiceListCarsProcedure  = "/homekeeper.v1.CarService/ListCars"
	CarServiceGetCarProcedure    = "/homekeeper.v1.CarService/GetCar"
	CarServiceAddCarProcedure    = "/homekeeper.v1.CarService/AddCar"
	CarServiceEditCarProcedure   = "/homekeeper.v1.CarService/EditCar"
	CarServiceDeleteCarProcedure = "/homekeeper.v1.CarService/DeleteCar"
)

// CarServiceHandler serves the family cars and their maintenance status.
type CarServiceHandler interface {
	ListCars(context.Context, *connect.Request[api.ListCarsRequest]) (*connect.Response[api.ListCarsResponse], error)
	GetCar(context.Context, *connect.Request[api.GetCarRequest]) (*connect.Response[api.GetCarResponse], error)
	AddCar(context.Context, *connect.Request[api.AddCarRequest]) (*connect.Response[api.AddCarResponse], error)
	EditCar(context.Context, *connect.Request[api.EditCarRequest]) (*connect.Response[api.EditCarResponse], error)
	DeleteCar(context.Context, *connect.Request[api.DeleteCarRequest]) (*connect.Response[api.DeleteCarResponse], error)
}

// NewCarServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCarServiceHandler(svc CarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listCarsHandler := connect.NewUnaryHandler(
		CarServiceListCarsProcedure,
		svc.ListCars,
		opts...,
	)
	getCarHandler := connect.NewUnaryHandler(
		CarServiceGetCarProcedure,
		svc.GetCar,
		opts...,
	)
	addCarHandler := connect.NewUnaryHandler(
		CarServiceAddCarProcedure,
		svc.AddCar,
		opts...,
	)
	editCarHandler := connect.NewUnaryHandler(
		CarServiceEditCarProcedure,
		svc.EditCar,
		opts...,
	)
	deleteCarHandler := connect.NewUnaryHandler(
		CarServiceDeleteCarProcedure,
		svc.DeleteCar,
		opts...,
	)
	return "/" + CarServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CarServiceListCarsProcedure:
			listCarsHandler.ServeHTTP(w, r)
		case CarServiceGetCarProcedure:
			getCarHandler.ServeHTTP(w, r)
		case CarServiceAddCarProcedure:
			addCarHandler.ServeHTTP(w, r)
		case CarServiceEditCarProcedure:
			editCarHandler.ServeHTTP(w, r)
		case CarServiceDeleteCarProcedure:
			deleteCarHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCarServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCarServiceHandler struct{}

func (UnimplementedCarServiceHandler) ListCars(context.Context, *connect.Request[api.ListCarsRequest]) (*connect.Response[api.ListCarsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.CarService.ListCars is not implemented"))
}

func (UnimplementedCarServiceHandler) GetCar(context.Context, *connect.Request[api.GetCarRequest]) (*connect.Response[api.GetCarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.CarService.GetCar is not implemented"))
}

func (UnimplementedCarServiceHandler) AddCar(context.Context, *connect.Request[api.AddCarRequest]) (*connect.Response[api.AddCarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.CarService.AddCar is not implemented"))
}

func (UnimplementedCarServiceHandler) EditCar(context.Context, *connect.Request[api.EditCarRequest]) (*connect.Response[api.EditCarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.CarService.EditCar is not implemented"))
}

func (UnimplementedCarServiceHandler) DeleteCar(context.Context, *connect.Request[api.DeleteCarRequest]) (*connect.Response[api.DeleteCarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.CarService.DeleteCar is not implemented"))
}

// CarServiceClient is a client for the CarService.
type CarServiceClient interface {
	ListCars(context.Context, *connect.Request[api.ListCarsRequest]) (*connect.Response[api.ListCarsResponse], error)
	GetCar(context.Context, *connect.Request[api.GetCarRequest]) (*connect.Response[api.GetCarResponse], error)
	AddCar(context.Context, *connect.Request[api.AddCarRequest]) (*connect.Response[api.AddCarResponse], error)
	EditCar(context.Context, *connect.Request[api.EditCarRequest]) (*connect.Response[api.EditCarResponse], error)
	DeleteCar(context.Context, *connect.Request[api.DeleteCarRequest]) (*connect.Response[api.DeleteCarResponse], error)
}

// NewCarServiceClient constructs a client for the CarService. baseURL is the
// server root, for example http://localhost:8080.
func NewCarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CarServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &carServiceClient{
		listCars: connect.NewClient[api.ListCarsRequest, api.ListCarsResponse](
			httpClient,
			baseURL+CarServiceListCarsProcedure,
			opts...,
		),
		getCar: connect.NewClient[api.GetCarRequest, api.GetCarResponse](
			httpClient,
			baseURL+CarServiceGetCarProcedure,
			opts...,
		),
		addCar: connect.NewClient[api.AddCarRequest, api.AddCarResponse](
			httpClient,
			baseURL+CarServiceAddCarProcedure,
			opts...,
		),
		editCar: connect.NewClient[api.EditCarRequest, api.EditCarResponse](
			httpClient,
			baseURL+CarServiceEditCarProcedure,
			opts...,
		),
		deleteCar: connect.NewClient[api.DeleteCarRequest, api.DeleteCarResponse](
			httpClient,
			baseURL+CarServiceDeleteCarProcedure,
			opts...,
		),
	}
}

type carServiceClient struct {
	listCars  *connect.Client[api.ListCarsRequest, api.ListCarsResponse]
	getCar    *connect.Client[api.GetCarRequest, api.GetCarResponse]
	addCar    *connect.Client[api.AddCarRequest, api.AddCarResponse]
	editCar   *connect.Client[api.EditCarRequest, api.EditCarResponse]
	deleteCar *connect.Client[api.DeleteCarRequest, api.DeleteCarResponse]
}

func (c *carServiceClient) ListCars(ctx context.Context, req *connect.Request[api.ListCarsRequest]) (*connect.Response[api.ListCarsResponse], error) {
	return c.listCars.CallUnary(ctx, req)
}

func (c *carServiceClient) GetCar(ctx context.Context, req *connect.Request[api.GetCarRequest]) (*connect.Response[api.GetCarResponse], error) {
	return c.getCar.CallUnary(ctx, req)
}

func (c *carServiceClient) AddCar(ctx context.Context, req *connect.Request[api.AddCarRequest]) (*connect.Response[api.AddCarResponse], error) {
	return c.addCar.CallUnary(ctx, req)
}

func (c *carServiceClient) EditCar(ctx context.Context, req *connect.Request[api.EditCarRequest]) (*connect.Response[api.EditCarResponse], error) {
	return c.editCar.CallUnary(ctx, req)
}

func (c *carServiceClient) DeleteCar(ctx context.Context, req *connect.Request[api.DeleteCarRequest]) (*connect.Response[api.DeleteCarResponse], error) {
	return c.deleteCar.CallUnary(ctx, req)
}
