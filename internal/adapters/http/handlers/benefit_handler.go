package handlers

import (
	"errors"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BenefitHandler handles benefit calculator endpoints
type BenefitHandler struct {
	benefitService *services.BenefitService
}

// NewBenefitHandler creates a new benefit handler
func NewBenefitHandler(benefitService *services.BenefitService) *BenefitHandler {
	return &BenefitHandler{
		benefitService: benefitService,
	}
}

// PeriodBalance computes a benefit balance
// @Summary Compute benefit balance
// @Description Compute the benefit balance for a period from a daily value and spent amount
// @Tags Benefits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.BenefitInput true "Calculation input"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /benefits/balance [post]
func (h *BenefitHandler) PeriodBalance(c *fiber.Ctx) error {
	var input services.BenefitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	balance, err := h.benefitService.PeriodBalance(&input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to compute balance")
	}

	return response.Success(c, "Balance computed", fiber.Map{
		"balance": balance,
	})
}
