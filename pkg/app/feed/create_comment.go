package feed

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/comment"
	"github.com/feedguard/feedguard/pkg/domain/post"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=CommentCreator --dir=. --output=./mocks --filename=comment_creator_mock.go --case=underscore --with-expecter
type CommentCreator interface {
	Create(ctx context.Context, author jwt.Identity, postID uuid.UUID, text string) (*comment.Comment, error)
}

type commentCreator struct {
	logger    *logrus.Logger
	comments  comment.Repository
	posts     post.Repository
	finalizer ContentFinalizer
	publisher infraCache.EventPublisher
}

func NewCommentCreator(
	logger *logrus.Logger,
	comments comment.Repository,
	posts post.Repository,
	finalizer ContentFinalizer,
	publisher infraCache.EventPublisher,
) CommentCreator {
	return &commentCreator{
		logger:    logger,
		comments:  comments,
		posts:     posts,
		finalizer: finalizer,
		publisher: publisher,
	}
}

func (c *commentCreator) Create(
	ctx context.Context,
	author jwt.Identity,
	postID uuid.UUID,
	text string,
) (*comment.Comment, error) {
	parent, err := c.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	record, err := c.finalizer.Finalize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("finalize comment content: %w", err)
	}

	entity := &comment.Comment{
		PostID:         parent.ID,
		AuthorID:       author.UserID,
		AuthorName:     author.DisplayName,
		AuthorPhotoURL: author.PhotoURL,
	}
	entity.SetRecord(record)

	if err := c.comments.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}

	created := event.CommentCreatedEvent{
		CommentID:    entity.ID.String(),
		PostID:       parent.ID.String(),
		PostAuthorID: parent.AuthorID,
		AuthorID:     entity.AuthorID,
		AuthorName:   entity.AuthorName,
	}
	if err := c.publisher.Publish(ctx, channel.FeedEventsChannel, created); err != nil {
		c.logger.WithError(err).Warn("failed to publish comment created event")
	}

	return entity, nil
}
