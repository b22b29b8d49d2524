package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/pkg/geo"
	"github.com/location-insights/internal/usecase/dto"
)

// SearchUseCase is the thin geocoding surface: address to coordinates and
// back. Analytics use cases accept only coordinates.
type SearchUseCase struct {
	geocodeRepo repository.GeocodeRepository
	logger      *zap.Logger
}

func NewSearchUseCase(geocodeRepo repository.GeocodeRepository, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		geocodeRepo: geocodeRepo,
		logger:      logger,
	}
}

// Geocode resolves a free-text query to coordinate candidates
func (uc *SearchUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.ErrInvalidRequest
	}

	limit := req.Limit
	if limit == 0 {
		limit = 5
	}

	results, err := uc.geocodeRepo.Geocode(ctx, req.Query, limit)
	if err != nil {
		uc.logger.Error("Geocode failed", zap.String("query", req.Query), zap.Error(err))
		return nil, errors.ErrGeocodeFailed
	}

	return &dto.GeocodeResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

// ReverseGeocode resolves a coordinate to an address
func (uc *SearchUseCase) ReverseGeocode(ctx context.Context, req dto.ReverseGeocodeRequest) (*dto.ReverseGeocodeResponse, error) {
	if !geo.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	addr, err := uc.geocodeRepo.ReverseGeocode(ctx, req.Lat, req.Lon)
	if err != nil {
		uc.logger.Error("Reverse geocode failed", zap.Error(err))
		return nil, errors.ErrGeocodeFailed
	}

	return &dto.ReverseGeocodeResponse{
		Address: *addr,
	}, nil
}
