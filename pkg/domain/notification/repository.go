package notification

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, notification *Notification) error
	ListForRecipient(ctx context.Context, recipientID string, limit, offset int) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, recipientID string) error
}
