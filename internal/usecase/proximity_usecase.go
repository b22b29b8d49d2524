package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/geo"
)

// ProximityAggregator fans out one provider query per category and reduces
// the results to nearest-distance-per-category. It also keeps the full
// filtered place list for consumers that need more than the reduction.
type ProximityAggregator struct {
	placeRepo     repository.PlaceRepository
	logger        *zap.Logger
	scoring       domain.ScoringConfig
	maxConcurrent int
}

func NewProximityAggregator(
	placeRepo repository.PlaceRepository,
	logger *zap.Logger,
	scoring domain.ScoringConfig,
	maxConcurrent int,
) *ProximityAggregator {
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &ProximityAggregator{
		placeRepo:     placeRepo,
		logger:        logger,
		scoring:       scoring,
		maxConcurrent: maxConcurrent,
	}
}

// categoryQuery is the outcome of one per-category provider call
type categoryQuery struct {
	index    int
	category domain.Category
	places   []domain.Place
	err      error
}

// Aggregate runs one bounded-concurrency provider query per category and
// returns the per-category reductions plus the full deduplicated place list.
// A failed category yields {count: 0, nearest: nil}; other categories are
// unaffected. Inputs are assumed pre-validated by the calling use case.
func (a *ProximityAggregator) Aggregate(
	ctx context.Context,
	center domain.Coordinate,
	radiusM float64,
	categories []domain.Category,
) ([]domain.ProximityResult, []domain.Place) {
	return a.run(ctx, center, radiusM, categories, true)
}

// Search returns every matching place within the radius without the scoring
// decay cap, for plain proximity search where all places inside the radius
// matter.
func (a *ProximityAggregator) Search(
	ctx context.Context,
	center domain.Coordinate,
	radiusM float64,
	categories []domain.Category,
) []domain.Place {
	_, places := a.run(ctx, center, radiusM, categories, false)
	return places
}

func (a *ProximityAggregator) run(
	ctx context.Context,
	center domain.Coordinate,
	radiusM float64,
	categories []domain.Category,
	capToDecay bool,
) ([]domain.ProximityResult, []domain.Place) {
	bbox := geo.BoundingBoxAround(center, radiusM)

	resultsChan := make(chan categoryQuery, len(categories))
	sem := make(chan struct{}, a.maxConcurrent)

	for i, cat := range categories {
		go func(idx int, cat domain.Category) {
			// Bounded fan-out; give up immediately on cancellation
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				resultsChan <- categoryQuery{index: idx, category: cat, err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			places, err := a.placeRepo.FindPlaces(ctx, bbox, cat.QueryFilters())
			resultsChan <- categoryQuery{index: idx, category: cat, places: places, err: err}
		}(i, cat)
	}

	// Join all queries before reducing
	ordered := make([]categoryQuery, len(categories))
	for range categories {
		q := <-resultsChan
		ordered[q.index] = q
	}

	results := make([]domain.ProximityResult, 0, len(categories))
	var allPlaces []domain.Place
	seen := make(map[string]bool)

	for _, q := range ordered {
		if q.err != nil {
			a.logger.Warn("Category query failed, marking as absent",
				zap.String("category", string(q.category)),
				zap.Error(q.err))
			results = append(results, domain.ProximityResult{Category: q.category, Count: 0})
			continue
		}

		// Decay radius caps how far a place can still matter for scoring
		effectiveRadius := radiusM
		if s := a.scoring.ScoringFor(q.category); capToDecay && s.DecayRadius > 0 {
			effectiveRadius = math.Min(radiusM, s.DecayRadius)
		}

		count := 0
		nearest := math.Inf(1)
		for _, p := range q.places {
			if domain.ClassifyTags(p.Tags) != q.category {
				continue
			}
			dist := geo.Distance(center, domain.Coordinate{Lat: p.Lat, Lon: p.Lon})
			if dist > effectiveRadius {
				continue
			}
			// First occurrence wins, stable by provider order
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true

			p.Category = q.category
			p.Distance = dist
			allPlaces = append(allPlaces, p)

			count++
			if dist < nearest {
				nearest = dist
			}
		}

		result := domain.ProximityResult{Category: q.category, Count: count}
		if count > 0 {
			d := nearest
			result.NearestDistance = &d
		}
		results = append(results, result)
	}

	return results, allPlaces
}
