package http

import (
	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/post"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deletePostHandler struct {
	logger *logrus.Logger
	repo   post.Repository
	cache  infraCache.Client
}

func NewDeletePostHandler(
	logger *logrus.Logger,
	repo post.Repository,
	cache infraCache.Client,
) Handler {
	return &deletePostHandler{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

// Handle @Summary Delete a post
// @Description Removes a post owned by the authenticated user
// @Tags Posts
// @Produce json
// @Success 204 "Deleted"
// @Router /api/v1/posts/{post_id} [delete]
func (h *deletePostHandler) Handle(c *fiber.Ctx) error {
	author, ok := identityFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post id"})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		h.logger.WithError(err).Error("failed to get post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete post"})
	}

	if entity.AuthorID != author.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not the post author"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).Error("failed to delete post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete post"})
	}

	if err := h.cache.InvalidatePost(c.Context(), id.String()); err != nil {
		h.logger.WithError(err).Warn("failed to invalidate post cache")
	}
	if err := h.cache.InvalidateFeed(c.Context()); err != nil {
		h.logger.WithError(err).Warn("failed to invalidate feed cache")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
