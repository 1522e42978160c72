package http

import (
	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type markNotificationReadHandler struct {
	logger *logrus.Logger
	repo   notification.Repository
}

func NewMarkNotificationReadHandler(
	logger *logrus.Logger,
	repo notification.Repository,
) Handler {
	return &markNotificationReadHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Success 204 "Marked"
// @Router /api/v1/notifications/{notification_id}/read [put]
func (h *markNotificationReadHandler) Handle(c *fiber.Ctx) error {
	user, ok := identityFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	id, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}

	if err := h.repo.MarkRead(c.Context(), id, user.UserID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
		}
		h.logger.WithError(err).Error("failed to mark notification read")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to mark notification read"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
