package openstates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askthem/internal/directory/ports"
	"askthem/internal/platform/config"
	"askthem/pkg/platform/sentinel"
)

func newClient(t *testing.T, srv *httptest.Server, retryMax int) *Client {
	t.Helper()
	c, err := New(config.OpenStatesConfig{
		BaseURL:  srv.URL + "/api/v1/",
		APIKey:   "secret",
		Timeout:  5 * time.Second,
		RetryMax: retryMax,
	})
	require.NoError(t, err)
	return c
}

func TestFetchOfficeholders(t *testing.T) {
	t.Run("decodes legislator records", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/legislators/", r.URL.Path)
			assert.Equal(t, "ca", r.URL.Query().Get("state"))
			assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"leg_id": "CAL000088", "full_name": "Toni Atkins", "chamber": "upper", "district": "39", "active": true},
				{"leg_id": "CAL000001", "full_name": "Other Person", "chamber": "lower", "district": 7}
			]`))
		}))
		defer srv.Close()

		records, err := newClient(t, srv, 0).FetchOfficeholders(context.Background(), "ca")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "CAL000088", records[0]["leg_id"])
		assert.Equal(t, true, records[0]["active"])
	})

	t.Run("empty body is an empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer srv.Close()

		records, err := newClient(t, srv, 0).FetchOfficeholders(context.Background(), "wy")
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("server errors are unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newClient(t, srv, 0).FetchOfficeholders(context.Background(), "ca")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("unknown jurisdiction is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := newClient(t, srv, 0).FetchOfficeholders(context.Background(), "zz")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`[{"full_name": "Retry Ok"}]`))
		}))
		defer srv.Close()

		records, err := newClient(t, srv, 2).FetchOfficeholders(context.Background(), "ca")
		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.EqualValues(t, 2, calls.Load())
	})
}

func TestDistrictsAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/legislators/geo/", r.URL.Path)
		assert.Equal(t, "32.7157", r.URL.Query().Get("lat"))
		assert.Equal(t, "-117.1611", r.URL.Query().Get("long"))
		_, _ = w.Write([]byte(`[
			{"state": "CA", "chamber": "upper", "district": "39"},
			{"state": "ca", "chamber": "upper", "district": "39"},
			{"state": "ca", "chamber": "lower", "district": "78"},
			{"state": "ca", "chamber": "lower"}
		]`))
	}))
	defer srv.Close()

	refs, err := newClient(t, srv, 0).DistrictsAt(context.Background(), 32.7157, -117.1611)
	require.NoError(t, err)
	assert.Equal(t, []ports.DistrictRef{
		{Jurisdiction: "ca", Chamber: "upper", District: "39"},
		{Jurisdiction: "ca", Chamber: "lower", District: "78"},
	}, refs)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(config.OpenStatesConfig{})
	assert.ErrorContains(t, err, "base url is required")
}
