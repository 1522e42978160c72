package http

import (
	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/post"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getPostHandler struct {
	logger *logrus.Logger
	repo   post.Repository
	cache  infraCache.Client
}

func NewGetPostHandler(
	logger *logrus.Logger,
	repo post.Repository,
	cache infraCache.Client,
) Handler {
	return &getPostHandler{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

// Handle @Summary Get a post
// @Tags Posts
// @Produce json
// @Success 200 {object} post.Post "Post"
// @Router /api/v1/posts/{post_id} [get]
func (h *getPostHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post id"})
	}

	if cached, err := h.cache.GetPost(c.Context(), id.String()); err == nil {
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		h.logger.WithError(err).Error("failed to get post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get post"})
	}

	if err := h.cache.SavePost(c.Context(), entity); err != nil {
		h.logger.WithError(err).Warn("failed to cache post")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
