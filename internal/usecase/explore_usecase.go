package usecase

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/pkg/geo"
	"github.com/location-insights/internal/usecase/dto"
)

// ExploreUseCase composes the aggregator's full place set into a descriptive
// area summary: counts by category plus the nearest highlights.
type ExploreUseCase struct {
	aggregator      *ProximityAggregator
	geocodeRepo     repository.GeocodeRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	defaultRadius   float64
	maxRadius       float64
	highlightsLimit int
	walkingSpeedMps float64
	cacheTTL        time.Duration
}

func NewExploreUseCase(
	aggregator *ProximityAggregator,
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	defaultRadius float64,
	maxRadius float64,
	highlightsLimit int,
	walkingSpeedMps float64,
	cacheTTL time.Duration,
) *ExploreUseCase {
	return &ExploreUseCase{
		aggregator:      aggregator,
		geocodeRepo:     geocodeRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		defaultRadius:   defaultRadius,
		maxRadius:       maxRadius,
		highlightsLimit: highlightsLimit,
		walkingSpeedMps: walkingSpeedMps,
		cacheTTL:        cacheTTL,
	}
}

// Explore profiles the area around a center point
func (uc *ExploreUseCase) Explore(ctx context.Context, req dto.ExploreRequest) (*domain.ExplorationSummary, error) {
	if !geo.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := req.RadiusM
	if radius == 0 {
		radius = uc.defaultRadius
	}
	if radius <= 0 || radius > uc.maxRadius {
		return nil, errors.ErrInvalidRadius
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.highlightsLimit
	}

	center := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}

	cacheKey := exploreCacheKey(center, radius, limit)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	addressChan := resolveAddress(ctx, uc.geocodeRepo, uc.logger, center)

	breakdown, places := uc.aggregator.Aggregate(ctx, center, radius, domain.AllCategories())

	summary := &domain.ExplorationSummary{
		Center:      center,
		RadiusM:     radius,
		Address:     <-addressChan,
		TotalPlaces: len(places),
		ByCategory:  make(map[domain.Category]int, len(breakdown)),
	}
	for _, r := range breakdown {
		summary.ByCategory[r.Category] = r.Count
	}
	summary.Highlights = uc.highlights(places, limit)

	uc.toCache(ctx, cacheKey, summary)

	uc.logger.Info("Area exploration computed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Int("total_places", summary.TotalPlaces))

	return summary, nil
}

// Nearby lists places around a point, nearest first, optionally narrowed to
// one category. Unlike livability scoring, the full search radius applies to
// every category.
func (uc *ExploreUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*domain.NearbyPlaces, error) {
	if !geo.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := req.RadiusM
	if radius == 0 {
		radius = uc.defaultRadius
	}
	if radius <= 0 || radius > uc.maxRadius {
		return nil, errors.ErrInvalidRadius
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.highlightsLimit
	}

	categories := domain.AllCategories()
	if req.Category != "" {
		if !domain.IsValidCategory(req.Category) {
			return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": req.Category,
			})
		}
		categories = []domain.Category{domain.Category(req.Category)}
	}

	center := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}

	cacheKey := nearbyCacheKey(center, radius, req.Category, limit)
	if cached := uc.nearbyFromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	places := uc.aggregator.Search(ctx, center, radius, categories)

	result := &domain.NearbyPlaces{
		Center:   center,
		RadiusM:  radius,
		Category: domain.Category(req.Category),
		Total:    len(places),
		Places:   uc.highlights(places, limit),
	}

	uc.nearbyToCache(ctx, cacheKey, result)

	uc.logger.Info("Nearby search computed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.String("category", req.Category),
		zap.Int("total", result.Total))

	return result, nil
}

// highlights picks the nearest places across all categories.
// Walking time assumes a street-grid detour factor of 1.2 over the
// straight-line distance.
func (uc *ExploreUseCase) highlights(places []domain.Place, limit int) []domain.PlaceHighlight {
	sorted := make([]domain.Place, len(places))
	copy(sorted, places)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Distance < sorted[j].Distance
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	highlights := make([]domain.PlaceHighlight, 0, len(sorted))
	for _, p := range sorted {
		walkingTime := p.Distance * 1.2 / uc.walkingSpeedMps / 60
		highlights = append(highlights, domain.PlaceHighlight{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category,
			Lat:            p.Lat,
			Lon:            p.Lon,
			DistanceM:      math.Round(p.Distance*10) / 10,
			WalkingTimeMin: math.Round(walkingTime*10) / 10,
		})
	}
	return highlights
}

func (uc *ExploreUseCase) nearbyFromCache(ctx context.Context, key string) *domain.NearbyPlaces {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var result domain.NearbyPlaces
	if err := json.Unmarshal(data, &result); err != nil {
		uc.logger.Warn("Failed to unmarshal cached nearby result", zap.Error(err))
		return nil
	}
	return &result
}

func (uc *ExploreUseCase) nearbyToCache(ctx context.Context, key string, result *domain.NearbyPlaces) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache nearby result", zap.Error(err))
	}
}

func (uc *ExploreUseCase) fromCache(ctx context.Context, key string) *domain.ExplorationSummary {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var summary domain.ExplorationSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		uc.logger.Warn("Failed to unmarshal cached exploration summary", zap.Error(err))
		return nil
	}
	return &summary
}

func (uc *ExploreUseCase) toCache(ctx context.Context, key string, summary *domain.ExplorationSummary) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache exploration summary", zap.Error(err))
	}
}
