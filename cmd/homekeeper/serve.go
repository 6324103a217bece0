package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/internal/middleware"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/service"
	"github.com/mmynk/homekeeper/internal/storage"
	"github.com/mmynk/homekeeper/internal/telemetry"
	"github.com/mmynk/homekeeper/internal/views"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

func serve(ctx context.Context, cfg config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	handler, err := newHandler(store, cfg, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		// Wrap with h2c for HTTP/2 without TLS
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newHandler wires the Connect services, health and metrics endpoints and the
// HTTP middleware over store. Metrics are registered with reg.
func newHandler(store storage.Store, cfg config.Config, reg *prometheus.Registry) (http.Handler, error) {
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(telemetry.NewCollector(store, time.Now)); err != nil {
		return nil, err
	}
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	app := newApp(store, cfg, views.WithNotifier(notify.Logger(slog.Default())))
	names := memberNames(cfg)

	interceptors := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTaskServiceHandler(service.NewTaskService(app.Tasks), interceptors))
	mux.Handle(apiconnect.NewGroceryServiceHandler(service.NewGroceryService(app.Groceries, names), interceptors))
	mux.Handle(apiconnect.NewCarServiceHandler(service.NewCarService(app.Cars), interceptors))
	mux.Handle(apiconnect.NewDashboardServiceHandler(service.NewDashboardService(app.Dashboard), interceptors))
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return middleware.Chain(mux,
		middleware.WithRequestID,
		middleware.WithRecover,
		middleware.WithAccessLog,
		middleware.WithCORS(cfg.AllowedOrigins),
	), nil
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
