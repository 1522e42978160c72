package repository

import (
	"context"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) Save(ctx context.Context, entity *notification.Notification) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *notificationRepository) ListForRecipient(ctx context.Context, recipientID string, limit, offset int) ([]notification.Notification, error) {
	var entities []notification.Notification
	result := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("notifications: %w", result.Error)
	}
	return entities, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipientID string) error {
	result := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("notification", id)
	}
	return nil
}
