package calculator

import (
	"time"

	"github.com/mmynk/homekeeper/internal/models"
)

// LowFuelThreshold is the fuel percentage below which a car raises an alert.
const LowFuelThreshold = 25

func IsLowFuel(level int) bool {
	return level < LowFuelThreshold
}

// AlertKind names what a car alert is about.
type AlertKind string

const (
	AlertService    AlertKind = "service"
	AlertInspection AlertKind = "inspection"
	AlertFuel       AlertKind = "fuel"
)

// Alert is one reason a car needs attention.
type Alert struct {
	Kind AlertKind
	// Status is set for date alerts.
	Status DateStatus
	// Days until the date, for date alerts.
	Days int
}

// CarStatus is the derived view of a single car.
type CarStatus struct {
	Car              models.Car
	ServiceStatus    DateStatus
	InspectionStatus DateStatus
	DaysToService    int
	DaysToInspection int
	LowFuel          bool
	Alerts           []Alert
}

func (s CarStatus) NeedsAttention() bool {
	return len(s.Alerts) > 0
}

// EvaluateCar computes the status and alerts of car at now.
// A date alert is raised for every status other than ok.
func EvaluateCar(car models.Car, now time.Time) CarStatus {
	status := CarStatus{
		Car:              car,
		ServiceStatus:    ClassifyDate(car.NextService, now),
		InspectionStatus: ClassifyDate(car.NextInspection, now),
		LowFuel:          IsLowFuel(car.FuelLevel),
	}
	if !car.NextService.IsZero() {
		status.DaysToService = DaysUntil(car.NextService, now)
	}
	if !car.NextInspection.IsZero() {
		status.DaysToInspection = DaysUntil(car.NextInspection, now)
	}

	if status.ServiceStatus != StatusOK {
		status.Alerts = append(status.Alerts, Alert{Kind: AlertService, Status: status.ServiceStatus, Days: status.DaysToService})
	}
	if status.InspectionStatus != StatusOK {
		status.Alerts = append(status.Alerts, Alert{Kind: AlertInspection, Status: status.InspectionStatus, Days: status.DaysToInspection})
	}
	if status.LowFuel {
		status.Alerts = append(status.Alerts, Alert{Kind: AlertFuel})
	}
	return status
}

func EvaluateCars(cars []models.Car, now time.Time) []CarStatus {
	out := make([]CarStatus, len(cars))
	for i, car := range cars {
		out[i] = EvaluateCar(car, now)
	}
	return out
}
