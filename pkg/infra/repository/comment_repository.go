package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/comment"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Save(ctx context.Context, entity *comment.Comment) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *commentRepository) Get(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	var entity comment.Comment
	result := r.db.WithContext(ctx).First(&entity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("comment", id)
		}
		return nil, fmt.Errorf("comment: %w", result.Error)
	}
	return &entity, nil
}

func (r *commentRepository) ListForPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, error) {
	var entities []comment.Comment
	result := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("comments: %w", result.Error)
	}
	return entities, nil
}

func (r *commentRepository) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&comment.Comment{}).
		Where("post_id = ?", postID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("count comments: %w", result.Error)
	}
	return count, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&comment.Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("comment", id)
	}
	return nil
}
