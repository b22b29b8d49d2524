package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/location-insights/internal/domain"
)

func TestHaversine(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Haversine(40.7128, -74.0060, 40.7128, -74.0060))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := Haversine(40.7128, -74.0060, 41.3851, 2.1734)
		d2 := Haversine(41.3851, 2.1734, 40.7128, -74.0060)
		assert.InDelta(t, d1, d2, 1e-6)
	})

	t.Run("known distance NYC to LA", func(t *testing.T) {
		// ~3936 km great-circle
		d := Haversine(40.7128, -74.0060, 34.0522, -118.2437)
		assert.InDelta(t, 3936000, d, 10000)
	})

	t.Run("short distance", func(t *testing.T) {
		// one degree of latitude is ~111.2 km
		d := Haversine(41.0, 2.0, 42.0, 2.0)
		assert.InDelta(t, 111195, d, 200)
	})
}

func TestBoundingBoxAround(t *testing.T) {
	t.Run("contains every point within the radius", func(t *testing.T) {
		center := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
		radius := 1000.0
		bbox := BoundingBoxAround(center, radius)

		// Walk the circle boundary in small angular steps; every boundary
		// point must fall inside the box.
		for deg := 0; deg < 360; deg += 5 {
			rad := float64(deg) * math.Pi / 180.0
			lat := center.Lat + radius/111000.0*math.Sin(rad)
			lon := center.Lon + radius/(111000.0*math.Cos(center.Lat*math.Pi/180.0))*math.Cos(rad)
			assert.True(t, bbox.Contains(lat, lon), "boundary point at %d deg escaped bbox", deg)
		}
	})

	t.Run("overestimates the radius", func(t *testing.T) {
		center := domain.Coordinate{Lat: 48.8566, Lon: 2.3522}
		bbox := BoundingBoxAround(center, 500)

		assert.Greater(t, bbox.MaxLat-center.Lat, 500.0/111000.0)
		assert.Greater(t, center.Lat-bbox.MinLat, 500.0/111000.0)
	})

	t.Run("clamps to valid coordinate ranges", func(t *testing.T) {
		bbox := BoundingBoxAround(domain.Coordinate{Lat: 89.999, Lon: 179.999}, 50000)
		assert.LessOrEqual(t, bbox.MaxLat, 90.0)
		assert.LessOrEqual(t, bbox.MaxLon, 180.0)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"valid", 40.7128, -74.0060, true},
		{"lat out of range", 91, 0, false},
		{"lon out of range", 0, -181, false},
		{"boundary values", 90, 180, true},
		{"NaN latitude", math.NaN(), 0, false},
		{"infinite longitude", 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}
