package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/pkg/api"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

func setupServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	require.NoError(t, err)

	handler, err := newHandler(store, cfg, prometheus.NewRegistry())
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	for _, store := range []string{config.StoreMemory, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			cfg := config.Default()
			cfg.Store = store
			server := setupServer(t, cfg)

			status, body := get(t, server.URL+"/healthz")
			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, `{"status":"ok"}`, body)

			client := apiconnect.NewDashboardServiceClient(http.DefaultClient, server.URL)
			resp, err := client.GetOverview(context.Background(), connect.NewRequest(&api.GetOverviewRequest{}))
			require.NoError(t, err)
			assert.Len(t, resp.Msg.Categories, 5)
			assert.Len(t, resp.Msg.Leaderboard, 6)

			status, body = get(t, server.URL+"/metrics")
			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, body, `homekeeper_tasks{state="pending"} 2`)
			assert.Contains(t, body, `homekeeper_rpc_requests_total{code="ok",procedure="/homekeeper.v1.DashboardService/GetOverview"} 1`)
		})
	}
}

func TestServerSetsRequestID(t *testing.T) {
	server := setupServer(t, config.Default())

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestPrintCars(t *testing.T) {
	ctx := context.Background()

	app, closeApp, err := open(ctx, config.Default())
	require.NoError(t, err)
	defer closeApp()

	var out bytes.Buffer
	require.NoError(t, printCars(ctx, &out, app.Cars))
	assert.Contains(t, out.String(), "Toyota Corolla")
	assert.Contains(t, out.String(), "CC-11-DD")
	assert.Contains(t, out.String(), "inspection, fuel")
}

func TestPrintCarsEmpty(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Seed = false

	app, closeApp, err := open(ctx, cfg)
	require.NoError(t, err)
	defer closeApp()

	var out bytes.Buffer
	require.NoError(t, printCars(ctx, &out, app.Cars))
	assert.Equal(t, "No cars.\n", out.String())
}

func TestCarsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homekeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: false\nlog_level: error\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "cars"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "No cars.\n", out.String())
}

func TestCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homekeeper.ini")
	require.NoError(t, os.WriteFile(path, []byte("seed = false\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", path, "cars"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}
