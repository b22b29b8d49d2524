package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	apperrors "github.com/location-insights/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewClient creates an OSRM routing client implementing RouteRepository
func NewClient(cfg *config.OSRMConfig, logger *zap.Logger) repository.RouteRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint: cfg.Endpoint,
		logger:   logger,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute returns the distance and duration of the best route between two
// points for the given travel mode. Geometry is not requested: only the
// summary cost is needed.
func (c *client) GetRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (*domain.RouteLeg, error) {
	// OSRM expects lon,lat ordering
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=false&steps=false",
		c.endpoint,
		mode.OSRMProfile(),
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	c.logger.Debug("Calling OSRM",
		zap.String("mode", string(mode)),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("OSRM request failed", zap.String("mode", string(mode)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	// OSRM reports NoRoute with a 400 and a JSON code, read the body either way
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", apperrors.ErrProviderUnavailable, err)
	}

	var parsed routeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("Failed to decode OSRM response",
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return nil, fmt.Errorf("%w: decode: %v", apperrors.ErrProviderUnavailable, err)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		if parsed.Code == "NoRoute" || parsed.Code == "NoSegment" {
			return nil, apperrors.ErrNoRouteFound
		}
		c.logger.Warn("OSRM returned non-OK code",
			zap.String("code", parsed.Code),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrProviderUnavailable, parsed.Code)
	}

	route := parsed.Routes[0]

	return &domain.RouteLeg{
		Mode:      mode,
		DistanceM: route.Distance,
		DurationS: route.Duration,
	}, nil
}
