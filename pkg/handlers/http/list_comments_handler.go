package http

import (
	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type listCommentsHandler struct {
	logger *logrus.Logger
	lister feed.CommentLister
}

func NewListCommentsHandler(
	logger *logrus.Logger,
	lister feed.CommentLister,
) Handler {
	return &listCommentsHandler{
		logger: logger,
		lister: lister,
	}
}

// Handle @Summary List comments for a post
// @Tags Comments
// @Produce json
// @Success 200 {array} comment.Comment "Comments"
// @Router /api/v1/posts/{post_id}/comments [get]
func (h *listCommentsHandler) Handle(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post id"})
	}

	limit := c.QueryInt("limit", feed.DefaultPageSize)
	offset := c.QueryInt("offset", 0)

	comments, err := h.lister.List(c.Context(), postID, limit, offset)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		h.logger.WithError(err).Error("failed to list comments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list comments"})
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
