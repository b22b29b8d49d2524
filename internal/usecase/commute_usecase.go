package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/pkg/geo"
	"github.com/location-insights/internal/usecase/dto"
)

// CommuteUseCase compares route costs between two points across travel modes
type CommuteUseCase struct {
	routeRepo repository.RouteRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewCommuteUseCase(
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CommuteUseCase {
	return &CommuteUseCase{
		routeRepo: routeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// modeQuery is the outcome of one per-mode routing call
type modeQuery struct {
	mode domain.TravelMode
	leg  *domain.RouteLeg
	err  error
}

// Compare issues one routing call per mode and ranks the available legs.
// A failed mode is marked unavailable; the report is returned successfully
// even when every mode fails.
func (uc *CommuteUseCase) Compare(ctx context.Context, req dto.CommuteRequest) (*domain.CommuteReport, error) {
	if !geo.ValidateCoordinates(req.Origin.Lat, req.Origin.Lon) ||
		!geo.ValidateCoordinates(req.Destination.Lat, req.Destination.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	if req.Origin.Lat == req.Destination.Lat && req.Origin.Lon == req.Destination.Lon {
		return nil, errors.ErrSameOriginDestination
	}

	modes, err := resolveModes(req.Modes)
	if err != nil {
		return nil, err
	}

	origin := domain.Coordinate{Lat: req.Origin.Lat, Lon: req.Origin.Lon}
	destination := domain.Coordinate{Lat: req.Destination.Lat, Lon: req.Destination.Lon}

	cacheKey := commuteCacheKey(origin, destination, modes)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// Per-mode routing calls are independent, fan out and join
	resultsChan := make(chan modeQuery, len(modes))
	for _, mode := range modes {
		go func(m domain.TravelMode) {
			leg, err := uc.routeRepo.GetRoute(ctx, origin, destination, m)
			resultsChan <- modeQuery{mode: m, leg: leg, err: err}
		}(mode)
	}

	legs := make(map[domain.TravelMode]domain.CommuteLeg, len(modes))
	for range modes {
		q := <-resultsChan
		if q.err != nil {
			uc.logger.Warn("Routing failed for mode, marking unavailable",
				zap.String("mode", string(q.mode)),
				zap.Error(q.err))
			legs[q.mode] = domain.CommuteLeg{Mode: q.mode, Available: false}
			continue
		}
		legs[q.mode] = domain.CommuteLeg{
			Mode:        q.mode,
			Available:   true,
			DistanceM:   q.leg.DistanceM,
			DurationS:   q.leg.DurationS,
			DurationMin: math.Round(q.leg.DurationS/60*10) / 10,
		}
	}

	report := &domain.CommuteReport{
		Origin:      origin,
		Destination: destination,
		Legs:        legs,
	}
	report.FastestMode = fastestMode(legs)
	report.Recommendation = recommendation(report)

	uc.toCache(ctx, cacheKey, report)

	uc.logger.Info("Commute comparison computed",
		zap.Int("modes", len(modes)),
		zap.String("fastest", string(report.FastestMode)))

	return report, nil
}

// fastestMode picks the available leg with the minimum duration. Ties break
// on shorter distance, then on mode order car, bike, foot.
func fastestMode(legs map[domain.TravelMode]domain.CommuteLeg) domain.TravelMode {
	var fastest domain.TravelMode
	found := false
	for _, mode := range domain.AllTravelModes() {
		leg, ok := legs[mode]
		if !ok || !leg.Available {
			continue
		}
		if !found {
			fastest = mode
			found = true
			continue
		}
		best := legs[fastest]
		if leg.DurationS < best.DurationS ||
			(leg.DurationS == best.DurationS && leg.DistanceM < best.DistanceM) {
			fastest = mode
		}
	}
	return fastest
}

func recommendation(report *domain.CommuteReport) string {
	if report.FastestMode == "" {
		return "Routing is unavailable for all requested modes"
	}
	leg := report.Legs[report.FastestMode]
	return fmt.Sprintf("%s is the fastest option: %.1f min for %.1f km",
		report.FastestMode, leg.DurationMin, leg.DistanceM/1000)
}

// resolveModes validates an optional mode subset. An omitted list means all
// modes; an explicitly empty list is rejected.
func resolveModes(names []string) ([]domain.TravelMode, error) {
	if names == nil {
		return domain.AllTravelModes(), nil
	}
	if len(names) == 0 {
		return nil, errors.ErrInvalidTravelMode.WithDetails(map[string]interface{}{
			"modes": "must not be empty",
		})
	}
	modes := make([]domain.TravelMode, 0, len(names))
	seen := make(map[domain.TravelMode]bool)
	for _, n := range names {
		if !domain.IsValidTravelMode(n) {
			return nil, errors.ErrInvalidTravelMode.WithDetails(map[string]interface{}{
				"mode": n,
			})
		}
		mode := domain.TravelMode(n)
		if seen[mode] {
			continue
		}
		seen[mode] = true
		modes = append(modes, mode)
	}
	return modes, nil
}

func (uc *CommuteUseCase) fromCache(ctx context.Context, key string) *domain.CommuteReport {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var report domain.CommuteReport
	if err := json.Unmarshal(data, &report); err != nil {
		uc.logger.Warn("Failed to unmarshal cached commute report", zap.Error(err))
		return nil
	}
	return &report
}

func (uc *CommuteUseCase) toCache(ctx context.Context, key string, report *domain.CommuteReport) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache commute report", zap.Error(err))
	}
}
