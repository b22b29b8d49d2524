package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	httpDelivery "github.com/location-insights/internal/delivery/http"
	"github.com/location-insights/internal/delivery/http/handler"
	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	"github.com/location-insights/internal/infrastructure/nominatim"
	"github.com/location-insights/internal/infrastructure/osrm"
	"github.com/location-insights/internal/infrastructure/overpass"
	"github.com/location-insights/internal/pkg/logger"
	"github.com/location-insights/internal/repository/cache"
	"github.com/location-insights/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Location Insights")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis when enabled. The service runs without it, every
	// request is then computed from the providers directly.
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, running without a result cache")
	}

	// 4. Initialize provider clients
	placeRepo := overpass.NewClient(&cfg.Overpass, log)
	routeRepo := osrm.NewClient(&cfg.OSRM, log)
	geocodeRepo := nominatim.NewClient(&cfg.Nominatim, log)

	log.Info("Provider clients initialized")

	// 5. Initialize use cases
	scoring := domain.DefaultScoringConfig()

	aggregator := usecase.NewProximityAggregator(
		placeRepo,
		log,
		scoring,
		cfg.Analytics.MaxConcurrentQueries,
	)

	livabilityUC := usecase.NewLivabilityUseCase(
		aggregator,
		geocodeRepo,
		cacheRepo,
		log,
		scoring,
		cfg.Analytics.DefaultRadius,
		cfg.Analytics.MaxRadius,
		cfg.Cache.LivabilityTTL,
	)

	commuteUC := usecase.NewCommuteUseCase(
		routeRepo,
		cacheRepo,
		log,
		cfg.Cache.CommuteTTL,
	)

	exploreUC := usecase.NewExploreUseCase(
		aggregator,
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Analytics.DefaultRadius,
		cfg.Analytics.MaxRadius,
		cfg.Analytics.HighlightsLimit,
		cfg.Analytics.WalkingSpeedMps,
		cfg.Cache.ExploreTTL,
	)

	searchUC := usecase.NewSearchUseCase(geocodeRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	livabilityHandler := handler.NewLivabilityHandler(livabilityUC, log)
	commuteHandler := handler.NewCommuteHandler(commuteUC, log)
	exploreHandler := handler.NewExploreHandler(exploreUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		livabilityHandler,
		commuteHandler,
		exploreHandler,
		searchHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
