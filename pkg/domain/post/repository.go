package post

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, post *Post) error
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
