package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, comment *Comment) error
	Get(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListForPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]Comment, error)
	CountForPost(ctx context.Context, postID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
