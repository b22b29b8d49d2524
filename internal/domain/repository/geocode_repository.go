package repository

import (
	"context"

	"github.com/location-insights/internal/domain"
)

// GeocodeRepository resolves addresses to coordinates and back
type GeocodeRepository interface {
	Geocode(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error)
}
