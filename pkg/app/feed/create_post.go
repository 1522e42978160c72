package feed

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/post"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PostCreator --dir=. --output=./mocks --filename=post_creator_mock.go --case=underscore --with-expecter
type PostCreator interface {
	Create(ctx context.Context, author jwt.Identity, text string) (*post.Post, error)
}

type postCreator struct {
	logger    *logrus.Logger
	repo      post.Repository
	finalizer ContentFinalizer
	cache     PostCache
	publisher infraCache.EventPublisher
}

func NewPostCreator(
	logger *logrus.Logger,
	repo post.Repository,
	finalizer ContentFinalizer,
	cache PostCache,
	publisher infraCache.EventPublisher,
) PostCreator {
	return &postCreator{
		logger:    logger,
		repo:      repo,
		finalizer: finalizer,
		cache:     cache,
		publisher: publisher,
	}
}

func (c *postCreator) Create(ctx context.Context, author jwt.Identity, text string) (*post.Post, error) {
	record, err := c.finalizer.Finalize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("finalize post content: %w", err)
	}

	entity := &post.Post{
		AuthorID:       author.UserID,
		AuthorName:     author.DisplayName,
		AuthorPhotoURL: author.PhotoURL,
	}
	entity.SetRecord(record)

	if err := c.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}

	if err := c.cache.SavePost(ctx, entity); err != nil {
		c.logger.WithError(err).Warn("failed to cache post")
	}

	c.publish(ctx, entity, record.Censored())

	return entity, nil
}

// publish is best effort: the post is already persisted, so event bus
// failures only cost cache freshness and notifications.
func (c *postCreator) publish(ctx context.Context, entity *post.Post, flagged bool) {
	created := event.PostCreatedEvent{
		PostID:     entity.ID.String(),
		AuthorID:   entity.AuthorID,
		AuthorName: entity.AuthorName,
	}
	if err := c.publisher.Publish(ctx, channel.FeedEventsChannel, created); err != nil {
		c.logger.WithError(err).Warn("failed to publish post created event")
	}

	if !flagged || entity.Verdict == nil {
		return
	}
	flaggedEvent := event.ContentFlaggedEvent{
		PostID:        entity.ID.String(),
		AuthorID:      entity.AuthorID,
		ToxicityLevel: entity.Verdict.Level.String(),
		Categories:    entity.Verdict.DetectedCategories,
	}
	if err := c.publisher.Publish(ctx, channel.FeedEventsChannel, flaggedEvent); err != nil {
		c.logger.WithError(err).Warn("failed to publish content flagged event")
	}
}
