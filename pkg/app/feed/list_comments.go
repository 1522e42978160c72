package feed

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/comment"
	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=CommentLister --dir=. --output=./mocks --filename=comment_lister_mock.go --case=underscore --with-expecter
type CommentLister interface {
	List(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, error)
}

type commentLister struct {
	logger   *logrus.Logger
	comments comment.Repository
	posts    post.Repository
}

func NewCommentLister(
	logger *logrus.Logger,
	comments comment.Repository,
	posts post.Repository,
) CommentLister {
	return &commentLister{
		logger:   logger,
		comments: comments,
		posts:    posts,
	}
}

func (l *commentLister) List(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := l.posts.Get(ctx, postID); err != nil {
		return nil, err
	}

	entities, err := l.comments.ListForPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return entities, nil
}
