package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/location-insights/internal/pkg/errors"
	"github.com/location-insights/internal/pkg/utils"
	"github.com/location-insights/internal/pkg/validator"
	"github.com/location-insights/internal/usecase"
	"github.com/location-insights/internal/usecase/dto"
)

// SearchHandler serves forward and reverse geocoding requests
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Geocode handles GET /api/v1/geocode?q=...&limit=...
func (h *SearchHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{
		Query: c.Query("q"),
		Limit: c.QueryInt("limit", 0),
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	resp, err := h.searchUC.Geocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// ReverseGeocode handles POST /api/v1/reverse-geocode
func (h *SearchHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse reverse geocode request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	resp, err := h.searchUC.ReverseGeocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
