package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	"github.com/location-insights/internal/domain"
	apperrors "github.com/location-insights/internal/pkg/errors"
)

func testBBox() domain.BoundingBox {
	return domain.BoundingBox{MinLat: 40.70, MinLon: -74.02, MaxLat: 40.72, MaxLon: -74.00}
}

func TestClient_FindPlaces(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request parses nodes and ways", func(t *testing.T) {
		var receivedQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			receivedQuery = r.Form.Get("data")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"elements": [
					{"type": "node", "id": 101, "lat": 40.7130, "lon": -74.0055,
					 "tags": {"shop": "supermarket", "name": "Corner Market"}},
					{"type": "way", "id": 202,
					 "center": {"lat": 40.7110, "lon": -74.0100},
					 "tags": {"leisure": "park", "name": "River Park"}},
					{"type": "way", "id": 303, "tags": {"leisure": "park"}}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		places, err := client.FindPlaces(context.Background(), testBBox(), []domain.TagFilter{
			{Key: "shop", Value: "supermarket"},
		})
		require.NoError(t, err)

		// The way without a center is dropped
		require.Len(t, places, 2)
		assert.Equal(t, "node/101", places[0].ID)
		assert.Equal(t, "Corner Market", places[0].Name)
		assert.Equal(t, 40.7130, places[0].Lat)
		assert.Equal(t, "way/202", places[1].ID)
		assert.Equal(t, 40.7110, places[1].Lat)

		assert.Contains(t, receivedQuery, `node["shop"="supermarket"]`)
		assert.Contains(t, receivedQuery, `way["shop"="supermarket"]`)
		assert.Contains(t, receivedQuery, "out center")
	})

	t.Run("empty filters rejected", func(t *testing.T) {
		cfg := &config.OverpassConfig{Endpoint: "http://localhost", RequestTimeout: time.Second}
		client := NewClient(cfg, logger)

		places, err := client.FindPlaces(context.Background(), testBBox(), nil)
		assert.Error(t, err)
		assert.Nil(t, places)
	})

	t.Run("server error maps to provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("rate limited"))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{Endpoint: server.URL, RequestTimeout: time.Second}
		client := NewClient(cfg, logger)

		places, err := client.FindPlaces(context.Background(), testBBox(), []domain.TagFilter{
			{Key: "amenity", Value: "cafe"},
		})
		assert.Nil(t, places)
		assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
	})

	t.Run("context cancellation aborts the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"elements": []}`))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{Endpoint: server.URL, RequestTimeout: 5 * time.Second}
		client := NewClient(cfg, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.FindPlaces(ctx, testBBox(), []domain.TagFilter{{Key: "shop", Value: ""}})
		assert.Error(t, err)
	})
}

func TestBuildQuery(t *testing.T) {
	query := buildQuery(testBBox(), []domain.TagFilter{
		{Key: "amenity", Value: "restaurant"},
		{Key: "shop", Value: ""},
	})

	assert.True(t, strings.HasPrefix(query, "[out:json];"))
	assert.Contains(t, query, `node["amenity"="restaurant"](40.700000,-74.020000,40.720000,-74.000000);`)
	// Key-only filters match any value
	assert.Contains(t, query, `node["shop"](`)
	assert.Contains(t, query, `way["shop"](`)
}
