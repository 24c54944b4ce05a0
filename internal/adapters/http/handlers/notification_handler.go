package handlers

import (
	"errors"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List lists the acting user's notifications
// @Summary List notifications
// @Description List notifications addressed to the authenticated user or their role
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	notifications, err := h.notificationService.ListForRecipient(c.Context(), userID, domain.Role(role))
	if err != nil {
		return h.notificationError(c, err, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved", fiber.Map{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// MarkRead marks a notification as read
// @Summary Mark notification read
// @Description Set the read flag on one of the authenticated user's notifications
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	notificationID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(c.Context(), userID, notificationID); err != nil {
		return h.notificationError(c, err, "Failed to mark notification read")
	}

	return response.Success(c, "Notification marked read", nil)
}

func (h *NotificationHandler) notificationError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, services.ErrNotificationNotFound):
		return response.NotFound(c, "Notification not found")
	case errors.Is(err, services.ErrNotRecipient):
		return response.Forbidden(c, "Notification belongs to another recipient")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}
