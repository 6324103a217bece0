package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/views"
)

func printCars(ctx context.Context, w io.Writer, cars *views.CarView) error {
	statuses, err := cars.List(ctx)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		_, err := fmt.Fprintln(w, "No cars.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CAR", "PLATE", "OWNER", "SERVICE", "INSPECTION", "FUEL", "ALERTS")
	for _, s := range statuses {
		t.Row(
			s.Car.Name,
			s.Car.Plate,
			s.Car.Owner,
			dateCell(s.Car.NextService, s.ServiceStatus, s.DaysToService),
			dateCell(s.Car.NextInspection, s.InspectionStatus, s.DaysToInspection),
			strconv.Itoa(s.Car.FuelLevel)+"%",
			alertsCell(s.Alerts),
		)
	}
	_, err = fmt.Fprintln(w, t.String())
	return err
}

func dateCell(date time.Time, status calculator.DateStatus, days int) string {
	if date.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s %s (%+dd)", date.Format(models.DateLayout), status, days)
}

func alertsCell(alerts []calculator.Alert) string {
	if len(alerts) == 0 {
		return "-"
	}
	kinds := make([]string, len(alerts))
	for i, a := range alerts {
		kinds[i] = string(a.Kind)
	}
	return strings.Join(kinds, ", ")
}
