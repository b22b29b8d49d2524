package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

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

// NewClient creates an Overpass API client implementing PlaceRepository
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.PlaceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint: cfg.Endpoint,
		logger:   logger,
	}
}

// element is a single node or way from an Overpass response
type element struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type response struct {
	Elements []element `json:"elements"`
}

// FindPlaces queries Overpass for nodes and ways matching any of the tag
// filters inside the bounding box. Ways are located by their computed center.
func (c *client) FindPlaces(ctx context.Context, bbox domain.BoundingBox, filters []domain.TagFilter) ([]domain.Place, error) {
	if len(filters) == 0 {
		return nil, fmt.Errorf("tag filters cannot be empty")
	}

	query := buildQuery(bbox, filters)

	c.logger.Debug("Calling Overpass API",
		zap.String("endpoint", c.endpoint),
		zap.Int("filters_count", len(filters)))

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Overpass request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrProviderUnavailable, resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("Failed to decode Overpass response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode: %v", apperrors.ErrProviderUnavailable, err)
	}

	places := make([]domain.Place, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		lat, lon := el.Lat, el.Lon
		if el.Type != "node" {
			if el.Center == nil {
				continue
			}
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		places = append(places, domain.Place{
			ID:   fmt.Sprintf("%s/%d", el.Type, el.ID),
			Name: el.Tags["name"],
			Lat:  lat,
			Lon:  lon,
			Tags: el.Tags,
		})
	}

	c.logger.Debug("Overpass query successful", zap.Int("places", len(places)))

	return places, nil
}

// buildQuery renders an Overpass QL union of node and way selectors, one pair
// per tag filter, with `out center` so ways carry a usable coordinate.
func buildQuery(bbox domain.BoundingBox, filters []domain.TagFilter) string {
	bboxStr := fmt.Sprintf("%f,%f,%f,%f", bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)

	var sb strings.Builder
	sb.WriteString("[out:json];\n(\n")
	for _, f := range filters {
		var selector string
		if f.Value == "" {
			selector = fmt.Sprintf("[%q]", f.Key)
		} else {
			selector = fmt.Sprintf("[%q=%q]", f.Key, f.Value)
		}
		fmt.Fprintf(&sb, "  node%s(%s);\n", selector, bboxStr)
		fmt.Fprintf(&sb, "  way%s(%s);\n", selector, bboxStr)
	}
	sb.WriteString(");\nout center;\n")

	return sb.String()
}
