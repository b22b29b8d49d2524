package repository

import (
	"context"

	"github.com/location-insights/internal/domain"
)

// RouteRepository provides route costs from the upstream routing provider
type RouteRepository interface {
	// GetRoute returns the cost of traveling origin -> destination with the
	// given mode. Returns ErrNoRoute when the provider finds no route.
	GetRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (*domain.RouteLeg, error)
}
