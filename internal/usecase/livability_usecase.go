package usecase

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/pkg/geo"
	"github.com/location-insights/internal/usecase/dto"
)

// LivabilityUseCase computes the weighted composite livability score of an
// area from per-category proximity results.
type LivabilityUseCase struct {
	aggregator    *ProximityAggregator
	geocodeRepo   repository.GeocodeRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	scoring       domain.ScoringConfig
	defaultRadius float64
	maxRadius     float64
	cacheTTL      time.Duration
}

func NewLivabilityUseCase(
	aggregator *ProximityAggregator,
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	scoring domain.ScoringConfig,
	defaultRadius float64,
	maxRadius float64,
	cacheTTL time.Duration,
) *LivabilityUseCase {
	return &LivabilityUseCase{
		aggregator:    aggregator,
		geocodeRepo:   geocodeRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		scoring:       scoring,
		defaultRadius: defaultRadius,
		maxRadius:     maxRadius,
		cacheTTL:      cacheTTL,
	}
}

// Score aggregates nearby places and reduces them to a 0-100 livability
// report. Provider failures degrade to zero sub-scores, never to a request
// error.
func (uc *LivabilityUseCase) Score(ctx context.Context, req dto.LivabilityRequest) (*domain.LivabilityReport, error) {
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

	categories, err := resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	center := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}

	cacheKey := livabilityCacheKey(center, radius, categories)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// Resolve the address concurrently with aggregation, best effort
	addressChan := resolveAddress(ctx, uc.geocodeRepo, uc.logger, center)

	breakdown, _ := uc.aggregator.Aggregate(ctx, center, radius, categories)

	report := &domain.LivabilityReport{
		Center:    center,
		RadiusM:   radius,
		Address:   <-addressChan,
		SubScores: make(map[domain.Category]float64, len(breakdown)),
		Breakdown: breakdown,
	}

	var totalScore, totalWeight float64
	for _, r := range breakdown {
		s := uc.scoring.ScoringFor(r.Category)
		totalWeight += s.Weight

		sub := subScore(r, s)
		report.SubScores[r.Category] = sub
		totalScore += sub
	}

	if totalWeight > 0 {
		report.OverallScore = clampScore(totalScore / totalWeight)
	}

	uc.toCache(ctx, cacheKey, report)

	uc.logger.Info("Livability score computed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Float64("radius_m", radius),
		zap.Float64("overall", report.OverallScore))

	return report, nil
}

// subScore applies the linear decay: full weight at distance 0, zero at the
// decay radius, zero when the category is absent.
func subScore(r domain.ProximityResult, s domain.CategoryScoring) float64 {
	if r.NearestDistance == nil || s.Weight == 0 || s.DecayRadius == 0 {
		return 0
	}
	decay := math.Max(0, 1-*r.NearestDistance/s.DecayRadius)
	return 100 * s.Weight * decay
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// resolveCategories validates an optional category subset. An omitted list
// means all categories; an explicitly empty list is rejected.
func resolveCategories(names []string) ([]domain.Category, error) {
	if names == nil {
		return domain.AllCategories(), nil
	}
	if len(names) == 0 {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"categories": "must not be empty",
		})
	}
	categories := make([]domain.Category, 0, len(names))
	for _, n := range names {
		if !domain.IsValidCategory(n) {
			return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": n,
			})
		}
		categories = append(categories, domain.Category(n))
	}
	return categories, nil
}

// resolveAddress reverse-geocodes the center in the background. The channel
// always yields exactly one value; failures yield an empty string.
func resolveAddress(ctx context.Context, repo repository.GeocodeRepository, logger *zap.Logger, center domain.Coordinate) <-chan string {
	out := make(chan string, 1)
	if repo == nil {
		out <- ""
		return out
	}
	go func() {
		addr, err := repo.ReverseGeocode(ctx, center.Lat, center.Lon)
		if err != nil {
			logger.Debug("Reverse geocode failed", zap.Error(err))
			out <- ""
			return
		}
		out <- addr.DisplayName
	}()
	return out
}

func (uc *LivabilityUseCase) fromCache(ctx context.Context, key string) *domain.LivabilityReport {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var report domain.LivabilityReport
	if err := json.Unmarshal(data, &report); err != nil {
		uc.logger.Warn("Failed to unmarshal cached livability report", zap.Error(err))
		return nil
	}
	return &report
}

func (uc *LivabilityUseCase) toCache(ctx context.Context, key string, report *domain.LivabilityReport) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	// Cache failures never affect the result
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache livability report", zap.Error(err))
	}
}
