package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"askthem/internal/directory"
	"askthem/internal/directory/ports/mocks"
	"askthem/internal/platform/config"
	"askthem/internal/platform/lock"
	"askthem/internal/platform/metrics"
	"askthem/internal/platform/middleware"
	"askthem/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Defaults()
	cfg.AdminToken = "token"
	stores, err := directory.OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := directory.Build(cfg, directory.Options{
		Stores: stores,
		Locker: lock.NewMemory(),
		Logger: log,
		Source: mocks.NewMockOfficeholderSource(gomock.NewController(t)),
	})
	require.NoError(t, err)
	return newRouter(app.Handler, log, metrics.NewWithRegisterer(prometheus.NewRegistry()))
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("directory routes are mounted", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/people?location=ca"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("admin routes need the token", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/admin/jurisdictions/ca/import"))
		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("metrics", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}
