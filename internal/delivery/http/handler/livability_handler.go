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

// LivabilityHandler serves livability score requests
type LivabilityHandler struct {
	livabilityUC *usecase.LivabilityUseCase
	logger       *zap.Logger
}

func NewLivabilityHandler(livabilityUC *usecase.LivabilityUseCase, logger *zap.Logger) *LivabilityHandler {
	return &LivabilityHandler{
		livabilityUC: livabilityUC,
		logger:       logger,
	}
}

// Score handles POST /api/v1/livability
func (h *LivabilityHandler) Score(c *fiber.Ctx) error {
	var req dto.LivabilityRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse livability request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	report, err := h.livabilityUC.Score(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}
