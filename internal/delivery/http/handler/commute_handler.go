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

// CommuteHandler serves commute comparison requests
type CommuteHandler struct {
	commuteUC *usecase.CommuteUseCase
	logger    *zap.Logger
}

func NewCommuteHandler(commuteUC *usecase.CommuteUseCase, logger *zap.Logger) *CommuteHandler {
	return &CommuteHandler{
		commuteUC: commuteUC,
		logger:    logger,
	}
}

// Compare handles POST /api/v1/commute
func (h *CommuteHandler) Compare(c *fiber.Ctx) error {
	var req dto.CommuteRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse commute request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	report, err := h.commuteUC.Compare(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}
