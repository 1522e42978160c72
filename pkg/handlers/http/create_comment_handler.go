package http

import (
	"errors"
	"strings"

	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type createCommentHandler struct {
	logger  *logrus.Logger
	creator feed.CommentCreator
}

func NewCreateCommentHandler(
	logger *logrus.Logger,
	creator feed.CommentCreator,
) Handler {
	return &createCommentHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Create a comment
// @Description Moderates the submitted text and attaches it to a post
// @Tags Comments
// @Accept json
// @Produce json
// @Success 201 {object} comment.Comment "Created comment"
// @Router /api/v1/posts/{post_id}/comments [post]
func (h *createCommentHandler) Handle(c *fiber.Ctx) error {
	author, ok := identityFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post id"})
	}

	var req request.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	entity, err := h.creator.Create(c.Context(), author, postID, req.Text)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		if errors.Is(err, moderation.ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
		}
		h.logger.WithError(err).Error("failed to create comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
