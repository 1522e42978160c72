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

type createPostHandler struct {
	logger  *logrus.Logger
	creator feed.PostCreator
}

func NewCreatePostHandler(
	logger *logrus.Logger,
	creator feed.PostCreator,
) Handler {
	return &createPostHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Create a post
// @Description Moderates the submitted text and publishes it to the feed
// @Tags Posts
// @Accept json
// @Produce json
// @Success 201 {object} post.Post "Created post"
// @Router /api/v1/posts [post]
func (h *createPostHandler) Handle(c *fiber.Ctx) error {
	author, ok := identityFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	entity, err := h.creator.Create(c.Context(), author, req.Text)
	if err != nil {
		if errors.Is(err, moderation.ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
		}
		h.logger.WithError(err).Error("failed to create post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create post"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
