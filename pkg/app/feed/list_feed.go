package feed

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

//go:generate mockery --name=FeedLister --dir=. --output=./mocks --filename=feed_lister_mock.go --case=underscore --with-expecter
type FeedLister interface {
	List(ctx context.Context, limit, offset int) ([]post.Post, error)
}

type feedLister struct {
	logger *logrus.Logger
	repo   post.Repository
	cache  PostCache
}

func NewFeedLister(
	logger *logrus.Logger,
	repo post.Repository,
	cache PostCache,
) FeedLister {
	return &feedLister{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (l *feedLister) List(ctx context.Context, limit, offset int) ([]post.Post, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	if cached, err := l.cache.GetFeedPage(ctx, limit, offset); err == nil {
		return cached, nil
	}

	posts, err := l.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	if err := l.cache.SaveFeedPage(ctx, limit, offset, posts); err != nil {
		l.logger.WithError(err).Warn("failed to cache feed page")
	}

	return posts, nil
}
