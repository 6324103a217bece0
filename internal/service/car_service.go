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

// CarService implements the Connect CarService
type CarService struct {
	apiconnect.UnimplementedCarServiceHandler
	cars *views.CarView
}

func NewCarService(cars *views.CarView) *CarService {
	return &CarService{cars: cars}
}

// ListCars returns every car with its maintenance status.
func (s *CarService) ListCars(ctx context.Context, req *connect.Request[api.ListCarsRequest]) (*connect.Response[api.ListCarsResponse], error) {
	slog.Info("ListCars request received")

	statuses, err := s.cars.List(ctx)
	if err != nil {
		slog.Error("ListCars failed", "error", err)
		return nil, connectError(err)
	}

	cars := make([]api.CarStatus, len(statuses))
	for i, status := range statuses {
		cars[i] = toAPICarStatus(status)
	}

	slog.Info("ListCars successful", "count", len(cars))

	return connect.NewResponse(&api.ListCarsResponse{Cars: cars}), nil
}

func (s *CarService) GetCar(ctx context.Context, req *connect.Request[api.GetCarRequest]) (*connect.Response[api.GetCarResponse], error) {
	slog.Info("GetCar request received", "car_id", req.Msg.Id)

	status, err := s.cars.Get(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("GetCar failed", "car_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetCarResponse{Car: toAPICarStatus(status)}), nil
}

// AddCar submits the add-car dialog.
func (s *CarService) AddCar(ctx context.Context, req *connect.Request[api.AddCarRequest]) (*connect.Response[api.AddCarResponse], error) {
	slog.Info("AddCar request received", "name", req.Msg.Draft.Name, "plate", req.Msg.Draft.Plate)

	ctx, rec := collect(ctx)
	var saved models.Car
	dlg := s.cars.NewAddDialog(func(c models.Car) { saved = c })
	dlg.OpenWith(carDraft(dialogs.NewCarDraft(), req.Msg.Draft))

	if err := dlg.Submit(ctx); err != nil {
		slog.Error("AddCar failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Car created", "car_id", saved.ID)

	return connect.NewResponse(&api.AddCarResponse{
		Car:           toAPICar(saved),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// EditCar submits the edit dialog of an existing car.
func (s *CarService) EditCar(ctx context.Context, req *connect.Request[api.EditCarRequest]) (*connect.Response[api.EditCarResponse], error) {
	slog.Info("EditCar request received", "car_id", req.Msg.Draft.Id)

	current, err := s.cars.Get(ctx, req.Msg.Draft.Id)
	if err != nil {
		slog.Error("EditCar failed", "car_id", req.Msg.Draft.Id, "error", err)
		return nil, connectError(err)
	}

	ctx, rec := collect(ctx)
	var saved models.Car
	dlg := s.cars.NewEditDialog(current.Car, func(c models.Car) { saved = c })
	dlg.SetDraft(carDraft(dialogs.CarDraftFrom(current.Car), req.Msg.Draft))

	if err := dlg.Submit(ctx); err != nil {
		slog.Error("EditCar failed", "car_id", req.Msg.Draft.Id, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Car updated", "car_id", saved.ID)

	return connect.NewResponse(&api.EditCarResponse{
		Car:           toAPICar(saved),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// DeleteCar removes a car. Unknown IDs succeed without a notification.
func (s *CarService) DeleteCar(ctx context.Context, req *connect.Request[api.DeleteCarRequest]) (*connect.Response[api.DeleteCarResponse], error) {
	slog.Info("DeleteCar request received", "car_id", req.Msg.Id)

	ctx, rec := collect(ctx)
	if err := s.cars.Delete(ctx, req.Msg.Id); err != nil {
		slog.Error("DeleteCar failed", "car_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteCarResponse{
		Notifications: toAPINotifications(rec.All()),
	}), nil
}
