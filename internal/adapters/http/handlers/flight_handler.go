package handlers

import (
	"errors"
	"strconv"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FlightHandler handles flight request and flight plan endpoints
type FlightHandler struct {
	flightService *services.FlightService
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(flightService *services.FlightService) *FlightHandler {
	return &FlightHandler{
		flightService: flightService,
	}
}

// Submit creates a flight request
// @Summary Submit flight request
// @Description Submit a new flight request; the coordinator role is notified
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SubmitInput true "Flight request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /flights/requests [post]
func (h *FlightHandler) Submit(c *fiber.Ctx) error {
	var input services.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID, _ := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)

	request, err := h.flightService.Submit(c.Context(), userID, username, &input)
	if err != nil {
		return h.flightError(c, err, "Failed to submit flight request")
	}

	return response.Created(c, "Flight request submitted", fiber.Map{
		"request": request.ToResponse(),
	})
}

// ListRequests lists flight requests
// @Summary List flight requests
// @Description List flight requests, newest first, optionally by status (Coordinator only)
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /flights/requests [get]
func (h *FlightHandler) ListRequests(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	status := domain.RequestStatus(c.Query("status"))

	requests, err := h.flightService.ListRequests(c.Context(), userID, status)
	if err != nil {
		return h.flightError(c, err, "Failed to list flight requests")
	}

	return response.Success(c, "Flight requests retrieved", fiber.Map{
		"requests": requests,
		"total":    len(requests),
	})
}

// ListMyRequests lists the acting user's flight requests
// @Summary List own flight requests
// @Description List flight requests created by the authenticated user
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /flights/requests/mine [get]
func (h *FlightHandler) ListMyRequests(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	requests, err := h.flightService.ListMyRequests(c.Context(), userID)
	if err != nil {
		return h.flightError(c, err, "Failed to list flight requests")
	}

	return response.Success(c, "Flight requests retrieved", fiber.Map{
		"requests": requests,
		"total":    len(requests),
	})
}

// GetRequest gets a flight request
// @Summary Get flight request
// @Description Get a flight request by ID
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /flights/requests/{id} [get]
func (h *FlightHandler) GetRequest(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	requestID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.flightService.GetRequest(c.Context(), userID, requestID)
	if err != nil {
		return h.flightError(c, err, "Failed to get flight request")
	}

	return response.Success(c, "Flight request retrieved", fiber.Map{
		"request": request.ToResponse(),
	})
}

// Approve approves a flight request
// @Summary Approve flight request
// @Description Move a flight request from requested to approved (Coordinator only)
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/requests/{id}/approve [post]
func (h *FlightHandler) Approve(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	requestID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.flightService.Approve(c.Context(), userID, requestID)
	if err != nil {
		return h.flightError(c, err, "Failed to approve flight request")
	}

	return response.Success(c, "Flight request approved", fiber.Map{
		"request": request.ToResponse(),
	})
}

// Schedule derives a flight plan from an approved request
// @Summary Schedule flight
// @Description Create a flight plan for an approved request; the requester is notified (Coordinator only)
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body services.ScheduleInput true "Flight plan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/requests/{id}/schedule [post]
func (h *FlightHandler) Schedule(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	requestID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var input services.ScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := h.flightService.Schedule(c.Context(), userID, requestID, &input)
	if err != nil {
		return h.flightError(c, err, "Failed to schedule flight")
	}

	return response.Created(c, "Flight scheduled", fiber.Map{
		"plan": plan,
	})
}

// Cancel cancels a flight request
// @Summary Cancel flight request
// @Description Cancel a flight request (and its plan) from any non-terminal state; the requester is notified
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/requests/{id}/cancel [post]
func (h *FlightHandler) Cancel(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	requestID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.flightService.Cancel(c.Context(), userID, requestID)
	if err != nil {
		return h.flightError(c, err, "Failed to cancel flight request")
	}

	return response.Success(c, "Flight request cancelled", fiber.Map{
		"request": request.ToResponse(),
	})
}

// ListPlans lists flight plans
// @Summary List flight plans
// @Description List all flight plans, newest first
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /flights/plans [get]
func (h *FlightHandler) ListPlans(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	plans, err := h.flightService.ListPlans(c.Context(), userID)
	if err != nil {
		return h.flightError(c, err, "Failed to list flight plans")
	}

	return response.Success(c, "Flight plans retrieved", fiber.Map{
		"plans": plans,
		"total": len(plans),
	})
}

// GetPlan gets a flight plan
// @Summary Get flight plan
// @Description Get a flight plan by ID
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /flights/plans/{id} [get]
func (h *FlightHandler) GetPlan(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	planID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	plan, err := h.flightService.GetPlan(c.Context(), userID, planID)
	if err != nil {
		return h.flightError(c, err, "Failed to get flight plan")
	}

	return response.Success(c, "Flight plan retrieved", fiber.Map{
		"plan": plan,
	})
}

// Confirm confirms a scheduled flight plan
// @Summary Confirm flight plan
// @Description Move a flight plan from scheduled to confirmed (Coordinator only)
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/plans/{id}/confirm [post]
func (h *FlightHandler) Confirm(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	planID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	plan, err := h.flightService.Confirm(c.Context(), userID, planID)
	if err != nil {
		return h.flightError(c, err, "Failed to confirm flight plan")
	}

	return response.Success(c, "Flight plan confirmed", fiber.Map{
		"plan": plan,
	})
}

// Start marks a flight as in progress
// @Summary Start flight
// @Description Move a flight plan (and its request) to in_progress
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/plans/{id}/start [post]
func (h *FlightHandler) Start(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	planID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	plan, err := h.flightService.Start(c.Context(), userID, planID)
	if err != nil {
		return h.flightError(c, err, "Failed to start flight")
	}

	return response.Success(c, "Flight started", fiber.Map{
		"plan": plan,
	})
}

// Complete marks a flight as completed
// @Summary Complete flight
// @Description Move a flight plan (and its request) to completed; the requester is notified
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/plans/{id}/complete [post]
func (h *FlightHandler) Complete(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	planID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	plan, err := h.flightService.Complete(c.Context(), userID, planID)
	if err != nil {
		return h.flightError(c, err, "Failed to complete flight")
	}

	return response.Success(c, "Flight completed", fiber.Map{
		"plan": plan,
	})
}

// CancelPlan cancels the request a flight plan was derived from
// @Summary Cancel flight by plan
// @Description Cancel the flight request a plan belongs to; the requester is notified
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /flights/plans/{id}/cancel [post]
func (h *FlightHandler) CancelPlan(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	planID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	request, err := h.flightService.CancelByPlan(c.Context(), userID, planID)
	if err != nil {
		return h.flightError(c, err, "Failed to cancel flight")
	}

	return response.Success(c, "Flight cancelled", fiber.Map{
		"request": request.ToResponse(),
	})
}

// flightError maps lifecycle errors to HTTP responses
func (h *FlightHandler) flightError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, domain.ErrRequestNotFound):
		return response.NotFound(c, "Flight request not found")
	case errors.Is(err, domain.ErrPlanNotFound):
		return response.NotFound(c, "Flight plan not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, domain.ErrInvalidPlan):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// parseID parses a positive integer path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
