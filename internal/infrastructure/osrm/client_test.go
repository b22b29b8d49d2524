package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	"github.com/location-insights/internal/domain"
	apperrors "github.com/location-insights/internal/pkg/errors"
)

var (
	testOrigin      = domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
	testDestination = domain.Coordinate{Lat: 40.7484, Lon: -73.9857}
)

func TestClient_GetRoute(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 5120.3, "duration": 421.7}]}`))
		}))
		defer server.Close()

		cfg := &config.OSRMConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		leg, err := client.GetRoute(context.Background(), testOrigin, testDestination, domain.ModeCar)
		require.NoError(t, err)
		assert.Equal(t, domain.ModeCar, leg.Mode)
		assert.Equal(t, 5120.3, leg.DistanceM)
		assert.Equal(t, 421.7, leg.DurationS)

		// Mode maps to the OSRM profile and coordinates are lon,lat
		assert.Contains(t, requestedPath, "/route/v1/driving/")
		assert.Contains(t, requestedPath, "-74.006000,40.712800")
	})

	t.Run("bike uses cycling profile", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 5300, "duration": 900}]}`))
		}))
		defer server.Close()

		cfg := &config.OSRMConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		_, err := client.GetRoute(context.Background(), testOrigin, testDestination, domain.ModeBike)
		require.NoError(t, err)
		assert.Contains(t, requestedPath, "/route/v1/cycling/")
	})

	t.Run("no route found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
		}))
		defer server.Close()

		cfg := &config.OSRMConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		leg, err := client.GetRoute(context.Background(), testOrigin, testDestination, domain.ModeFoot)
		assert.Nil(t, leg)
		assert.ErrorIs(t, err, apperrors.ErrNoRouteFound)
	})

	t.Run("malformed response maps to provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		cfg := &config.OSRMConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		leg, err := client.GetRoute(context.Background(), testOrigin, testDestination, domain.ModeCar)
		assert.Nil(t, leg)
		assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
	})

	t.Run("unreachable server maps to provider unavailable", func(t *testing.T) {
		cfg := &config.OSRMConfig{Endpoint: "http://127.0.0.1:1", RequestTimeout: 500 * time.Millisecond}
		client := NewClient(cfg, logger)

		leg, err := client.GetRoute(context.Background(), testOrigin, testDestination, domain.ModeCar)
		assert.Nil(t, leg)
		assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
	})
}
