package subscriber

import (
	"context"

	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type InvalidateCommentsCacheEventSubscriber struct {
	logger *logrus.Logger
	cache  infraCache.Client
}

func NewInvalidateCommentsCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.CommentCreatedEvent] {
	return &InvalidateCommentsCacheEventSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s InvalidateCommentsCacheEventSubscriber) OnEvent(ctx context.Context, evt event.CommentCreatedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"postID":    evt.PostID,
		"commentID": evt.CommentID,
	}).Debug("invalidating comments cache")

	if err := s.cache.InvalidatePost(ctx, evt.PostID); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate post cache")
	}

	return nil
}
