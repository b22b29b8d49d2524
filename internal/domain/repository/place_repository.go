package repository

import (
	"context"

	"github.com/location-insights/internal/domain"
)

// PlaceRepository provides points of interest from the upstream data provider
type PlaceRepository interface {
	// FindPlaces returns all places inside the bounding box matching any of
	// the tag filters. Returned places are unclassified; the caller owns
	// classification and distance filtering.
	FindPlaces(ctx context.Context, bbox domain.BoundingBox, filters []domain.TagFilter) ([]domain.Place, error)
}
