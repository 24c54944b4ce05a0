package handlers

import (
	"errors"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ExpenseHandler handles travel-expense report endpoints
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// Create creates an expense report
// @Summary Create expense report
// @Description Register a travel-expense reimbursement report
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ExpenseInput true "Expense data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var input services.ExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID, _ := c.Locals("userID").(uint)

	report, err := h.expenseService.Create(c.Context(), userID, &input)
	if err != nil {
		return h.expenseError(c, err, "Failed to create expense report")
	}

	return response.Created(c, "Expense report created", fiber.Map{
		"report": report,
	})
}

// List lists the acting user's expense reports
// @Summary List expense reports
// @Description List own expense reports, newest first, optionally by category
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Response
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	category := c.Query("category")

	reports, err := h.expenseService.List(c.Context(), userID, category)
	if err != nil {
		return h.expenseError(c, err, "Failed to list expense reports")
	}

	return response.Success(c, "Expense reports retrieved", fiber.Map{
		"reports": reports,
		"total":   len(reports),
	})
}

// Get gets an expense report
// @Summary Get expense report
// @Description Get one of your expense reports by ID
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	reportID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.expenseService.Get(c.Context(), userID, reportID)
	if err != nil {
		return h.expenseError(c, err, "Failed to get expense report")
	}

	return response.Success(c, "Expense report retrieved", fiber.Map{
		"report": report,
	})
}

// Update updates an expense report
// @Summary Update expense report
// @Description Update one of your expense reports
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param body body services.ExpenseInput true "Expense data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	reportID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	var input services.ExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	report, err := h.expenseService.Update(c.Context(), userID, reportID, &input)
	if err != nil {
		return h.expenseError(c, err, "Failed to update expense report")
	}

	return response.Success(c, "Expense report updated", fiber.Map{
		"report": report,
	})
}

// Delete deletes an expense report
// @Summary Delete expense report
// @Description Delete one of your expense reports
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	reportID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	if err := h.expenseService.Delete(c.Context(), userID, reportID); err != nil {
		return h.expenseError(c, err, "Failed to delete expense report")
	}

	return response.Success(c, "Expense report deleted", nil)
}

func (h *ExpenseHandler) expenseError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, services.ErrExpenseNotFound):
		return response.NotFound(c, "Expense report not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}
