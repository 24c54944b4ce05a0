package handlers

import (
	"errors"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RateHandler handles hourly rate endpoints
type RateHandler struct {
	rateService *services.RateService
}

// NewRateHandler creates a new rate handler
func NewRateHandler(rateService *services.RateService) *RateHandler {
	return &RateHandler{
		rateService: rateService,
	}
}

// Create creates an hourly rate
// @Summary Create hourly rate
// @Description Register a billing rate for an aircraft (Coordinator only)
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RateInput true "Rate data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var input services.RateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID, _ := c.Locals("userID").(uint)

	rate, err := h.rateService.Create(c.Context(), userID, &input)
	if err != nil {
		return h.rateError(c, err, "Failed to create rate")
	}

	return response.Created(c, "Rate created", fiber.Map{
		"rate": rate,
	})
}

// List lists hourly rates
// @Summary List hourly rates
// @Description List all hourly rates, newest first
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	rates, err := h.rateService.List(c.Context(), userID)
	if err != nil {
		return h.rateError(c, err, "Failed to list rates")
	}

	return response.Success(c, "Rates retrieved", fiber.Map{
		"rates": rates,
		"total": len(rates),
	})
}

// Get gets an hourly rate
// @Summary Get hourly rate
// @Description Get an hourly rate by ID
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rate ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/{id} [get]
func (h *RateHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	rateID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid rate ID")
	}

	rate, err := h.rateService.Get(c.Context(), userID, rateID)
	if err != nil {
		return h.rateError(c, err, "Failed to get rate")
	}

	return response.Success(c, "Rate retrieved", fiber.Map{
		"rate": rate,
	})
}

// FindActive finds the active rate for an aircraft
// @Summary Find active rate
// @Description Find the active hourly rate for an aircraft registration
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration path string true "Aircraft registration"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/active/{registration} [get]
func (h *RateHandler) FindActive(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	registration := c.Params("registration")

	rate, err := h.rateService.FindActiveRate(c.Context(), userID, registration)
	if err != nil {
		return h.rateError(c, err, "Failed to find active rate")
	}

	return response.Success(c, "Active rate retrieved", fiber.Map{
		"rate": rate,
	})
}

// Update updates an hourly rate
// @Summary Update hourly rate
// @Description Update an hourly rate (Coordinator only)
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rate ID"
// @Param body body services.RateInput true "Rate data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	rateID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid rate ID")
	}

	var input services.RateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rate, err := h.rateService.Update(c.Context(), userID, rateID, &input)
	if err != nil {
		return h.rateError(c, err, "Failed to update rate")
	}

	return response.Success(c, "Rate updated", fiber.Map{
		"rate": rate,
	})
}

// Delete deletes an hourly rate
// @Summary Delete hourly rate
// @Description Delete an hourly rate (Coordinator only)
// @Tags Rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rate ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/{id} [delete]
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	rateID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid rate ID")
	}

	if err := h.rateService.Delete(c.Context(), userID, rateID); err != nil {
		return h.rateError(c, err, "Failed to delete rate")
	}

	return response.Success(c, "Rate deleted", nil)
}

func (h *RateHandler) rateError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, domain.ErrRateNotFound):
		return response.NotFound(c, "Rate not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}
