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

// FlaggedContentEventSubscriber tells an author their submission went out
// censored.
type FlaggedContentEventSubscriber struct {
	logger        *logrus.Logger
	notifications notification.Repository
}

func NewFlaggedContentEventSubscriber(
	logger *logrus.Logger,
	notifications notification.Repository,
) infraCache.EventSubscriber[event.ContentFlaggedEvent] {
	return &FlaggedContentEventSubscriber{
		logger:        logger,
		notifications: notifications,
	}
}

func (s FlaggedContentEventSubscriber) OnEvent(ctx context.Context, evt event.ContentFlaggedEvent) error {
	postID, err := uuid.Parse(evt.PostID)
	if err != nil {
		return fmt.Errorf("invalid post id in event: %w", err)
	}

	entity := &notification.Notification{
		RecipientID: evt.AuthorID,
		Kind:        notification.KindFlagged,
		PostID:      postID,
		Message:     fmt.Sprintf("your post was flagged as %s and censored", evt.ToxicityLevel),
	}
	if err := s.notifications.Save(ctx, entity); err != nil {
		return fmt.Errorf("save flagged notification: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"postID": evt.PostID,
		"level":  evt.ToxicityLevel,
	}).Debug("flagged content notification created")

	return nil
}
