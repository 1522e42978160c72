package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) post.Repository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Save(ctx context.Context, entity *post.Post) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *postRepository) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var entity post.Post
	result := r.db.WithContext(ctx).First(&entity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("post", id)
		}
		return nil, fmt.Errorf("post: %w", result.Error)
	}
	return &entity, nil
}

func (r *postRepository) ListRecent(ctx context.Context, limit, offset int) ([]post.Post, error) {
	var entities []post.Post
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("posts: %w", result.Error)
	}
	return entities, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&post.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("post", id)
	}
	return nil
}
