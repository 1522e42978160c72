package http

import (
	"github.com/feedguard/feedguard/pkg/app/feed"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listPostsHandler struct {
	logger *logrus.Logger
	lister feed.FeedLister
}

func NewListPostsHandler(
	logger *logrus.Logger,
	lister feed.FeedLister,
) Handler {
	return &listPostsHandler{
		logger: logger,
		lister: lister,
	}
}

// Handle @Summary List feed posts
// @Description Returns the most recent posts, newest first
// @Tags Posts
// @Produce json
// @Success 200 {array} post.Post "Posts"
// @Router /api/v1/posts [get]
func (h *listPostsHandler) Handle(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", feed.DefaultPageSize)
	offset := c.QueryInt("offset", 0)

	posts, err := h.lister.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("failed to list posts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list posts"})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}
