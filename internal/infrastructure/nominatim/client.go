package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/location-insights/internal/config"
	"github.com/location-insights/internal/domain"
	"github.com/location-insights/internal/domain/repository"
	apperrors "github.com/location-insights/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a Nominatim geocoding client.
// Nominatim's usage policy requires an identifying User-Agent.
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type searchResult struct {
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

func (c *client) Geocode(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(limit)},
	}

	var raw []searchResult
	if err := c.getJSON(ctx, c.endpoint+"/search?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	results := make([]domain.GeocodeResult, 0, len(raw))
	for _, r := range raw {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		results = append(results, domain.GeocodeResult{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}

	return results, nil
}

func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format": {"json"},
	}

	var raw reverseResult
	if err := c.getJSON(ctx, c.endpoint+"/reverse?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	city := raw.Address.City
	if city == "" {
		city = raw.Address.Town
	}
	if city == "" {
		city = raw.Address.Village
	}

	return &domain.Address{
		DisplayName: raw.DisplayName,
		Road:        raw.Address.Road,
		HouseNumber: raw.Address.HouseNumber,
		City:        city,
		State:       raw.Address.State,
		Postcode:    raw.Address.Postcode,
		Country:     raw.Address.Country,
	}, nil
}

func (c *client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Nominatim request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrGeocodeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Nominatim returned error", zap.Int("status_code", resp.StatusCode))
		return fmt.Errorf("%w: status %d", apperrors.ErrGeocodeFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", apperrors.ErrGeocodeFailed, err)
	}

	return nil
}
