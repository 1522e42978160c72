package subscriber

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/notification"
	infraCache "github.com/feedguard/feedguard/pkg/infra/cache"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommentNotificationEventSubscriber tells a post's author about new
// comments. Self-comments produce no notification.
type CommentNotificationEventSubscriber struct {
	logger        *logrus.Logger
	notifications notification.Repository
}

func NewCommentNotificationEventSubscriber(
	logger *logrus.Logger,
	notifications notification.Repository,
) infraCache.EventSubscriber[event.CommentCreatedEvent] {
	return &CommentNotificationEventSubscriber{
		logger:        logger,
		notifications: notifications,
	}
}

func (s CommentNotificationEventSubscriber) OnEvent(ctx context.Context, evt event.CommentCreatedEvent) error {
	if evt.PostAuthorID == "" || evt.PostAuthorID == evt.AuthorID {
		return nil
	}

	postID, err := uuid.Parse(evt.PostID)
	if err != nil {
		return fmt.Errorf("invalid post id in event: %w", err)
	}

	entity := &notification.Notification{
		RecipientID: evt.PostAuthorID,
		ActorName:   evt.AuthorName,
		Kind:        notification.KindComment,
		PostID:      postID,
		Message:     fmt.Sprintf("%s commented on your post", evt.AuthorName),
	}
	if err := s.notifications.Save(ctx, entity); err != nil {
		return fmt.Errorf("save comment notification: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"postID":    evt.PostID,
		"recipient": evt.PostAuthorID,
	}).Debug("comment notification created")

	return nil
}
