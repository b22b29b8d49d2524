package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/usecase"
	"github.com/location-insights/internal/usecase/dto"
)

func newLivabilityUseCase(placeRepo *MockPlaceRepository, geocodeRepo repository.GeocodeRepository, cacheRepo repository.CacheRepository, scoring domain.ScoringConfig) *usecase.LivabilityUseCase {
	logger := zap.NewNop()
	agg := usecase.NewProximityAggregator(placeRepo, logger, scoring, 8)
	return usecase.NewLivabilityUseCase(agg, geocodeRepo, cacheRepo, logger, scoring, 1000, 10000, time.Minute)
}

func TestLivabilityUseCase_Score(t *testing.T) {
	t.Run("weighted linear decay over two categories", func(t *testing.T) {
		// grocery at 200m with weight 0.3 over 1000m gives 24,
		// park at 900m with weight 0.2 over 1500m gives 8,
		// overall (24 + 8) / 0.5 = 64
		scoring := domain.ScoringConfig{
			Categories: map[domain.Category]domain.CategoryScoring{
				domain.CategoryGrocery: {Weight: 0.3, DecayRadius: 1000},
				domain.CategoryPark:    {Weight: 0.2, DecayRadius: 1500},
			},
		}

		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, domain.CategoryGrocery.QueryFilters()).
			Return([]domain.Place{
				placeAtDistance("node/1", testCenter, 200, map[string]string{"shop": "supermarket"}),
			}, nil)
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, domain.CategoryPark.QueryFilters()).
			Return([]domain.Place{
				placeAtDistance("way/2", testCenter, 900, map[string]string{"leisure": "park"}),
			}, nil)

		uc := newLivabilityUseCase(placeRepo, nil, nil, scoring)
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat:        testCenter.Lat,
			Lon:        testCenter.Lon,
			RadiusM:    2000,
			Categories: []string{"grocery", "park"},
		})

		require.NoError(t, err)
		assert.InDelta(t, 24, report.SubScores[domain.CategoryGrocery], 0.1)
		assert.InDelta(t, 8, report.SubScores[domain.CategoryPark], 0.1)
		assert.InDelta(t, 64, report.OverallScore, 0.2)
		assert.Len(t, report.Breakdown, 2)
	})

	t.Run("empty area scores zero without error", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		uc := newLivabilityUseCase(placeRepo, nil, nil, domain.DefaultScoringConfig())
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon,
		})

		require.NoError(t, err)
		assert.Zero(t, report.OverallScore)
		for _, sub := range report.SubScores {
			assert.Zero(t, sub)
		}
	})

	t.Run("provider failures degrade to zero sub-scores", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.ErrProviderUnavailable)

		uc := newLivabilityUseCase(placeRepo, nil, nil, domain.DefaultScoringConfig())
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon,
		})

		require.NoError(t, err)
		assert.Zero(t, report.OverallScore)
	})

	t.Run("everything at the doorstep scores one hundred", func(t *testing.T) {
		scoring := domain.ScoringConfig{
			Categories: map[domain.Category]domain.CategoryScoring{
				domain.CategoryGrocery: {Weight: 0.3, DecayRadius: 1000},
			},
		}

		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{
				{ID: "node/1", Lat: testCenter.Lat, Lon: testCenter.Lon, Tags: map[string]string{"shop": "supermarket"}},
			}, nil)

		uc := newLivabilityUseCase(placeRepo, nil, nil, scoring)
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, Categories: []string{"grocery"},
		})

		require.NoError(t, err)
		assert.InDelta(t, 30, report.SubScores[domain.CategoryGrocery], 0.01)
		assert.InDelta(t, 100, report.OverallScore, 0.01)
	})

	t.Run("places beyond the decay radius contribute nothing", func(t *testing.T) {
		scoring := domain.ScoringConfig{
			Categories: map[domain.Category]domain.CategoryScoring{
				domain.CategoryGrocery: {Weight: 0.3, DecayRadius: 1000},
			},
		}

		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{
				placeAtDistance("node/far", testCenter, 1200, map[string]string{"shop": "supermarket"}),
			}, nil)

		uc := newLivabilityUseCase(placeRepo, nil, nil, scoring)
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, RadiusM: 2000, Categories: []string{"grocery"},
		})

		require.NoError(t, err)
		assert.Zero(t, report.SubScores[domain.CategoryGrocery])
		assert.Zero(t, report.OverallScore)
	})

	t.Run("invalid coordinates are rejected", func(t *testing.T) {
		uc := newLivabilityUseCase(&MockPlaceRepository{}, nil, nil, domain.DefaultScoringConfig())

		_, err := uc.Score(context.Background(), dto.LivabilityRequest{Lat: 91, Lon: 0})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)

		_, err = uc.Score(context.Background(), dto.LivabilityRequest{Lat: 0, Lon: -181})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})

	t.Run("invalid radius is rejected", func(t *testing.T) {
		uc := newLivabilityUseCase(&MockPlaceRepository{}, nil, nil, domain.DefaultScoringConfig())

		_, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, RadiusM: -5,
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)

		_, err = uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, RadiusM: 50000,
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)
	})

	t.Run("unknown category name is rejected", func(t *testing.T) {
		uc := newLivabilityUseCase(&MockPlaceRepository{}, nil, nil, domain.DefaultScoringConfig())

		_, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, Categories: []string{"nightlife"},
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCategory)
	})

	t.Run("explicitly empty category set is rejected", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newLivabilityUseCase(placeRepo, nil, nil, domain.DefaultScoringConfig())

		_, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon, Categories: []string{},
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCategory)
		placeRepo.AssertNotCalled(t, "FindPlaces", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("address is attached when reverse geocoding succeeds", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		geocodeRepo := &MockGeocodeRepository{}
		geocodeRepo.On("ReverseGeocode", mock.Anything, testCenter.Lat, testCenter.Lon).
			Return(&domain.Address{DisplayName: "Broadway, New York"}, nil)

		uc := newLivabilityUseCase(placeRepo, geocodeRepo, nil, domain.DefaultScoringConfig())
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon,
		})

		require.NoError(t, err)
		assert.Equal(t, "Broadway, New York", report.Address)
	})

	t.Run("cached report short-circuits aggregation", func(t *testing.T) {
		cached := domain.LivabilityReport{
			Center:       testCenter,
			RadiusM:      1000,
			OverallScore: 42,
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(data, nil)

		placeRepo := &MockPlaceRepository{}

		uc := newLivabilityUseCase(placeRepo, nil, cacheRepo, domain.DefaultScoringConfig())
		report, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon,
		})

		require.NoError(t, err)
		assert.InDelta(t, 42, report.OverallScore, 0.01)
		placeRepo.AssertNotCalled(t, "FindPlaces", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("computed report is written back to the cache", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(nil)

		placeRepo := &MockPlaceRepository{}
		placeRepo.On("FindPlaces", mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		uc := newLivabilityUseCase(placeRepo, nil, cacheRepo, domain.DefaultScoringConfig())
		_, err := uc.Score(context.Background(), dto.LivabilityRequest{
			Lat: testCenter.Lat, Lon: testCenter.Lon,
		})

		require.NoError(t, err)
		cacheRepo.AssertCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, time.Minute)
	})
}
