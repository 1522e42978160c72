package subscriber

import (
	"context"

	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type InvalidateFeedCacheEventSubscriber struct {
	logger *logrus.Logger
	cache  infraCache.Client
}

func NewInvalidateFeedCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.PostCreatedEvent] {
	return &InvalidateFeedCacheEventSubscriber{
		logger: logger,
		cache:  c,
	}
}

func (s InvalidateFeedCacheEventSubscriber) OnEvent(ctx context.Context, evt event.PostCreatedEvent) error {
	s.logger.WithFields(logrus.Fields{
		"postID": evt.PostID,
	}).Debug("invalidating feed cache")

	if err := s.cache.InvalidateFeed(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate feed cache")
	}

	return nil
}
