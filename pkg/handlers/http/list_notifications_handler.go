package http

import (
	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/feedguard/feedguard/pkg/domain/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listNotificationsHandler struct {
	logger *logrus.Logger
	repo   notification.Repository
}

func NewListNotificationsHandler(
	logger *logrus.Logger,
	repo notification.Repository,
) Handler {
	return &listNotificationsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List notifications for the authenticated user
// @Tags Notifications
// @Produce json
// @Success 200 {array} notification.Notification "Notifications"
// @Router /api/v1/notifications [get]
func (h *listNotificationsHandler) Handle(c *fiber.Ctx) error {
	user, ok := identityFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	limit := c.QueryInt("limit", feed.DefaultPageSize)
	offset := c.QueryInt("offset", 0)

	notifications, err := h.repo.ListForRecipient(c.Context(), user.UserID, limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("failed to list notifications")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list notifications"})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}
