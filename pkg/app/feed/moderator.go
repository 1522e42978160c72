package feed

import (
	"context"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/domain/post"
)

// ContentFinalizer resolves the moderation record for a piece of text at
// submit time. Satisfied by the moderation pipeline.
//
//go:generate mockery --name=ContentFinalizer --dir=. --output=./mocks --filename=content_finalizer_mock.go --case=underscore --with-expecter
type ContentFinalizer interface {
	Finalize(ctx context.Context, text string) (moderation.ContentRecord, error)
}

// PostCache is the slice of the cache client the feed services need.
type PostCache interface {
	SavePost(ctx context.Context, entity *post.Post) error
	GetFeedPage(ctx context.Context, limit, offset int) ([]post.Post, error)
	SaveFeedPage(ctx context.Context, limit, offset int, posts []post.Post) error
}
