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

// ExploreHandler serves area exploration requests
type ExploreHandler struct {
	exploreUC *usecase.ExploreUseCase
	logger    *zap.Logger
}

func NewExploreHandler(exploreUC *usecase.ExploreUseCase, logger *zap.Logger) *ExploreHandler {
	return &ExploreHandler{
		exploreUC: exploreUC,
		logger:    logger,
	}
}

// Explore handles POST /api/v1/explore
func (h *ExploreHandler) Explore(c *fiber.Ctx) error {
	var req dto.ExploreRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse explore request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	summary, err := h.exploreUC.Explore(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, &utils.Meta{Total: summary.TotalPlaces})
}

// Nearby handles POST /api/v1/places/nearby
func (h *ExploreHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse nearby request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.exploreUC.Nearby(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
