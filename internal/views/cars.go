package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
)

// CarView manages the family cars.
type CarView struct {
	mu    sync.Mutex
	store storage.Store
	env
}

func NewCarView(store storage.Store, opts ...Option) *CarView {
	return &CarView{store: store, env: newEnv(opts)}
}

// List returns every car with its service, inspection and fuel status as of
// the view's clock.
func (v *CarView) List(ctx context.Context) ([]calculator.CarStatus, error) {
	cars, err := v.store.Cars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	return calculator.EvaluateCars(cars, v.now()), nil
}

func (v *CarView) Get(ctx context.Context, id string) (calculator.CarStatus, error) {
	cars, err := v.store.Cars(ctx)
	if err != nil {
		return calculator.CarStatus{}, fmt.Errorf("failed to load cars: %w", err)
	}
	car, err := records.Find(cars, id)
	if err != nil {
		return calculator.CarStatus{}, err
	}
	return calculator.EvaluateCar(car, v.now()), nil
}

// Add appends a car built from draft. Any id on the draft is replaced.
func (v *CarView) Add(ctx context.Context, draft dialogs.CarDraft) (models.Car, error) {
	car, err := draft.Car()
	if err != nil {
		return models.Car{}, err
	}

	var added models.Car
	err = v.mutate(ctx, func(cars []models.Car) ([]models.Car, error) {
		next := records.Add(cars, car, records.FreshID(cars, v.newID))
		added = next[len(next)-1]
		return next, nil
	})
	return added, err
}

// Edit replaces the car identified by draft.ID.
func (v *CarView) Edit(ctx context.Context, draft dialogs.CarDraft) (models.Car, error) {
	car, err := draft.Car()
	if err != nil {
		return models.Car{}, err
	}

	err = v.mutate(ctx, func(cars []models.Car) ([]models.Car, error) {
		if !records.Contains(cars, car.ID) {
			return nil, records.ErrNotFound
		}
		return records.Edit(cars, car), nil
	})
	if err != nil {
		return models.Car{}, err
	}
	return car, nil
}

// Delete removes the car. Unknown ids are ignored and raise no notification.
func (v *CarView) Delete(ctx context.Context, id string) error {
	var removed bool
	err := v.mutate(ctx, func(cars []models.Car) ([]models.Car, error) {
		next := records.Remove(cars, id)
		removed = len(next) < len(cars)
		return next, nil
	})
	if err != nil {
		return err
	}
	if removed {
		v.notifier.Notify(ctx, notify.Success("Car removed", "The car was removed successfully"))
	}
	return nil
}

// NewAddDialog returns the add-car dialog.
func (v *CarView) NewAddDialog(onSaved ...func(models.Car)) *dialogs.Dialog[dialogs.CarDraft] {
	return dialogs.New(dialogs.NewCarDraft,
		v.commit(v.Add, onSaved),
		dialogs.WithNotifier(v.notifier),
		dialogs.WithSuccess("Success", "Car added successfully"),
	)
}

// NewEditDialog returns the edit-car dialog opened on car.
func (v *CarView) NewEditDialog(car models.Car, onSaved ...func(models.Car)) *dialogs.Dialog[dialogs.CarDraft] {
	dlg := dialogs.New(dialogs.NewCarDraft,
		v.commit(v.Edit, onSaved),
		dialogs.WithNotifier(v.notifier),
		dialogs.WithSuccess("Success", "Car updated successfully"),
	)
	dlg.OpenWith(dialogs.CarDraftFrom(car))
	return dlg
}

func (v *CarView) commit(
	save func(context.Context, dialogs.CarDraft) (models.Car, error),
	onSaved []func(models.Car),
) dialogs.CommitFunc[dialogs.CarDraft] {
	return func(ctx context.Context, d dialogs.CarDraft) error {
		car, err := save(ctx, d)
		if err != nil {
			return err
		}
		for _, fn := range onSaved {
			fn(car)
		}
		return nil
	}
}

func (v *CarView) mutate(ctx context.Context, fn func([]models.Car) ([]models.Car, error)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	cars, err := v.store.Cars(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cars: %w", err)
	}
	next, err := fn(cars)
	if err != nil {
		return err
	}
	if err := v.store.ReplaceCars(ctx, next); err != nil {
		return fmt.Errorf("failed to save cars: %w", err)
	}
	return nil
}
