package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/pkg/api"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

func TestLevelForCode(t *testing.T) {
	tests := []struct {
		code connect.Code
		want slog.Level
	}{
		{connect.CodeInvalidArgument, slog.LevelWarn},
		{connect.CodeNotFound, slog.LevelWarn},
		{connect.CodeUnimplemented, slog.LevelWarn},
		{connect.CodeInternal, slog.LevelError},
		{connect.CodeUnknown, slog.LevelError},
		{connect.CodeUnavailable, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, levelForCode(tt.code))
		})
	}
}

type failingDashboard struct {
	apiconnect.UnimplementedDashboardServiceHandler
}

func (failingDashboard) GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return nil, connect.NewError(connect.CodeInternal, errors.New("store unavailable"))
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	path, handler := apiconnect.NewDashboardServiceHandler(failingDashboard{},
		connect.WithInterceptors(LoggingInterceptor()))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(WithRequestID(mux))
	defer server.Close()

	client := apiconnect.NewDashboardServiceClient(http.DefaultClient, server.URL)
	_, err := client.GetOverview(context.Background(), connect.NewRequest(&api.GetOverviewRequest{}))
	require.Error(t, err)

	_, err = client.AddCategory(context.Background(), connect.NewRequest(&api.AddCategoryRequest{Name: "Laundry"}))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `level=ERROR msg="RPC error" procedure=/homekeeper.v1.DashboardService/GetOverview`)
	assert.Contains(t, out, "code=internal")
	assert.Contains(t, out, `level=WARN msg="RPC error" procedure=/homekeeper.v1.DashboardService/AddCategory`)
	assert.Contains(t, out, "request_id=")
}
