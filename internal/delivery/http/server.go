package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	"github.com/location-insights/internal/delivery/http/handler"
	"github.com/location-insights/internal/delivery/http/middleware"
)

// Server is the Fiber-based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	livabilityHandler *handler.LivabilityHandler
	commuteHandler    *handler.CommuteHandler
	exploreHandler    *handler.ExploreHandler
	searchHandler     *handler.SearchHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	livabilityHandler *handler.LivabilityHandler,
	commuteHandler *handler.CommuteHandler,
	exploreHandler *handler.ExploreHandler,
	searchHandler *handler.SearchHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Location Insights",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		livabilityHandler: livabilityHandler,
		commuteHandler:    commuteHandler,
		exploreHandler:    exploreHandler,
		searchHandler:     searchHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Analytics
	api.Post("/livability", s.livabilityHandler.Score)
	api.Post("/commute", s.commuteHandler.Compare)
	api.Post("/explore", s.exploreHandler.Explore)
	api.Post("/places/nearby", s.exploreHandler.Nearby)

	// Geocoding
	api.Get("/geocode", s.searchHandler.Geocode)
	api.Post("/reverse-geocode", s.searchHandler.ReverseGeocode)
}

// App exposes the underlying Fiber app for in-process testing
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler covers errors escaping the handlers, e.g. routing and
// body-size errors raised by Fiber itself
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
