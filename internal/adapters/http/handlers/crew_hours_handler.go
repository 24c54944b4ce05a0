package handlers

import (
	"errors"
	"strconv"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CrewHoursHandler handles crew flight-hour ledger endpoints
type CrewHoursHandler struct {
	crewHoursService *services.CrewHoursService
}

// NewCrewHoursHandler creates a new crew hours handler
func NewCrewHoursHandler(crewHoursService *services.CrewHoursService) *CrewHoursHandler {
	return &CrewHoursHandler{
		crewHoursService: crewHoursService,
	}
}

// Create appends a ledger entry
// @Summary Log crew hours
// @Description Append an entry to the crew flight-hour ledger (Coordinator only)
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CrewHoursInput true "Ledger entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /crew-hours [post]
func (h *CrewHoursHandler) Create(c *fiber.Ctx) error {
	var input services.CrewHoursInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID, _ := c.Locals("userID").(uint)

	entry, err := h.crewHoursService.Create(c.Context(), userID, &input)
	if err != nil {
		return h.crewError(c, err, "Failed to log crew hours")
	}

	return response.Created(c, "Crew hours logged", fiber.Map{
		"entry": entry,
	})
}

// List lists ledger entries
// @Summary List crew hours
// @Description List ledger entries, newest first, optionally by pilot
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pilot_id query int false "Filter by pilot ID"
// @Success 200 {object} response.Response
// @Router /crew-hours [get]
func (h *CrewHoursHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var pilotID uint
	if raw := c.Query("pilot_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid pilot ID")
		}
		pilotID = uint(parsed)
	}

	entries, err := h.crewHoursService.List(c.Context(), userID, pilotID)
	if err != nil {
		return h.crewError(c, err, "Failed to list crew hours")
	}

	return response.Success(c, "Crew hours retrieved", fiber.Map{
		"entries": entries,
		"total":   len(entries),
	})
}

// Summary totals a pilot's hours
// @Summary Pilot hours summary
// @Description Total logged hours for one pilot
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pilot_id path int true "Pilot ID"
// @Success 200 {object} response.Response
// @Router /crew-hours/summary/{pilot_id} [get]
func (h *CrewHoursHandler) Summary(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	pilotID, err := parseID(c, "pilot_id")
	if err != nil {
		return response.BadRequest(c, "Invalid pilot ID")
	}

	summary, err := h.crewHoursService.Summary(c.Context(), userID, pilotID)
	if err != nil {
		return h.crewError(c, err, "Failed to summarize crew hours")
	}

	return response.Success(c, "Crew hours summarized", fiber.Map{
		"summary": summary,
	})
}

// Get gets a ledger entry
// @Summary Get crew hours entry
// @Description Get a ledger entry by ID
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /crew-hours/{id} [get]
func (h *CrewHoursHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	entryID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	entry, err := h.crewHoursService.Get(c.Context(), userID, entryID)
	if err != nil {
		return h.crewError(c, err, "Failed to get crew hours entry")
	}

	return response.Success(c, "Crew hours entry retrieved", fiber.Map{
		"entry": entry,
	})
}

// Update updates a ledger entry
// @Summary Update crew hours entry
// @Description Update a ledger entry (Coordinator only)
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param body body services.CrewHoursInput true "Ledger entry data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /crew-hours/{id} [put]
func (h *CrewHoursHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	entryID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	var input services.CrewHoursInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entry, err := h.crewHoursService.Update(c.Context(), userID, entryID, &input)
	if err != nil {
		return h.crewError(c, err, "Failed to update crew hours entry")
	}

	return response.Success(c, "Crew hours entry updated", fiber.Map{
		"entry": entry,
	})
}

// Delete deletes a ledger entry
// @Summary Delete crew hours entry
// @Description Delete a ledger entry (Coordinator only)
// @Tags CrewHours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /crew-hours/{id} [delete]
func (h *CrewHoursHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	entryID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	if err := h.crewHoursService.Delete(c.Context(), userID, entryID); err != nil {
		return h.crewError(c, err, "Failed to delete crew hours entry")
	}

	return response.Success(c, "Crew hours entry deleted", nil)
}

func (h *CrewHoursHandler) crewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, services.ErrCrewEntryNotFound):
		return response.NotFound(c, "Crew hours entry not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}
