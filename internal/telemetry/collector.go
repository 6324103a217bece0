// Package telemetry exposes the household's derived metrics to Prometheus.
// Values are computed from the session store at scrape time. Per-record
// series carry the record id, since names and plates may repeat.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/storage"
)

const namespace = "homekeeper"

// scrapeTimeout bounds the store reads of one scrape.
const scrapeTimeout = 5 * time.Second

var (
	tasksDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "tasks"),
		"Tasks by state. needs_attention overlaps the other states.",
		[]string{"state"}, nil,
	)
	groceryDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "grocery_items"),
		"Shopping list items by state. high_priority counts pending items only.",
		[]string{"state"}, nil,
	)
	categoryProgressDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "category", "progress_percent"),
		"Completion percent of each category from its counters.",
		[]string{"id", "category"}, nil,
	)
	carFuelDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "car", "fuel_level_percent"),
		"Fuel level of each car.",
		[]string{"id", "car", "plate"}, nil,
	)
	carDaysDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "car", "days_until"),
		"Days until a car's next service or inspection; negative when overdue.",
		[]string{"id", "car", "plate", "kind"}, nil,
	)
	carAlertsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "car", "alerts"),
		"Open alerts per car.",
		[]string{"id", "car", "plate"}, nil,
	)
	scrapeErrorDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "scrape_error"),
		"1 if reading the store failed during the last scrape.",
		nil, nil,
	)
)

// Collector implements prometheus.Collector over a session store.
type Collector struct {
	store storage.Store
	now   func() time.Time
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector. A nil now uses time.Now.
func NewCollector(store storage.Store, now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{store: store, now: now}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		tasksDesc, groceryDesc, categoryProgressDesc,
		carFuelDesc, carDaysDesc, carAlertsDesc, scrapeErrorDesc,
	} {
		ch <- d
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	failed := 0.0
	if err := c.collect(ctx, ch); err != nil {
		slog.Error("Failed to collect household metrics", "error", err)
		failed = 1
	}
	ch <- prometheus.MustNewConstMetric(scrapeErrorDesc, prometheus.GaugeValue, failed)
}

func (c *Collector) collect(ctx context.Context, ch chan<- prometheus.Metric) error {
	tasks, err := c.store.Tasks(ctx)
	if err != nil {
		return err
	}
	ts := calculator.SummariseTasks(tasks)
	gauge(ch, tasksDesc, ts.Pending, "pending")
	gauge(ch, tasksDesc, ts.Completed, "completed")
	gauge(ch, tasksDesc, ts.NeedsAttention, "needs_attention")

	items, err := c.store.GroceryItems(ctx)
	if err != nil {
		return err
	}
	gs := calculator.SummariseGroceries(items)
	gauge(ch, groceryDesc, gs.Pending, "pending")
	gauge(ch, groceryDesc, gs.Bought, "bought")
	gauge(ch, groceryDesc, gs.HighPriority, "high_priority")

	categories, err := c.store.Categories(ctx)
	if err != nil {
		return err
	}
	progress, _ := calculator.SummariseCategories(categories)
	for _, p := range progress {
		gauge(ch, categoryProgressDesc, p.Percent, p.Category.ID, p.Category.Name)
	}

	cars, err := c.store.Cars(ctx)
	if err != nil {
		return err
	}
	for _, s := range calculator.EvaluateCars(cars, c.now()) {
		car := []string{s.Car.ID, s.Car.Name, s.Car.Plate}
		gauge(ch, carFuelDesc, s.Car.FuelLevel, car...)
		gauge(ch, carAlertsDesc, len(s.Alerts), car...)
		if !s.Car.NextService.IsZero() {
			gauge(ch, carDaysDesc, s.DaysToService, append(car, string(calculator.AlertService))...)
		}
		if !s.Car.NextInspection.IsZero() {
			gauge(ch, carDaysDesc, s.DaysToInspection, append(car, string(calculator.AlertInspection))...)
		}
	}
	return nil
}

func gauge(ch chan<- prometheus.Metric, desc *prometheus.Desc, v int, labels ...string) {
	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(v), labels...)
}
