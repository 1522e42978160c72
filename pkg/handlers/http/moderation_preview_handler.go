package http

import (
	"errors"
	"strings"

	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderationPreviewHandler struct {
	logger    *logrus.Logger
	finalizer feed.ContentFinalizer
}

func NewModerationPreviewHandler(
	logger *logrus.Logger,
	finalizer feed.ContentFinalizer,
) Handler {
	return &moderationPreviewHandler{
		logger:    logger,
		finalizer: finalizer,
	}
}

// Handle @Summary Preview moderation of a text
// @Description Classifies and censors the text without publishing anything
// @Tags Moderation
// @Accept json
// @Produce json
// @Success 200 {object} moderation.ContentRecord "Moderation result"
// @Router /api/v1/moderation/preview [post]
func (h *moderationPreviewHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerationPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	record, err := h.finalizer.Finalize(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, moderation.ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
		}
		h.logger.WithError(err).Error("failed to moderate text")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to moderate text"})
	}

	return c.Status(fiber.StatusOK).JSON(record)
}
