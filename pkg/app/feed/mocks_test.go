package feed

import (
	"context"

	"github.com/feedguard/feedguard/pkg/domain/comment"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Save(ctx context.Context, entity *post.Post) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockPostRepository) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p, _ := args.Get(0).(*post.Post)
	return p, args.Error(1)
}

func (m *mockPostRepository) ListRecent(ctx context.Context, limit, offset int) ([]post.Post, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	posts, _ := args.Get(0).([]post.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Save(ctx context.Context, entity *comment.Comment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockCommentRepository) Get(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	c, _ := args.Get(0).(*comment.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepository) ListForPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]comment.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	comments, _ := args.Get(0).([]comment.Comment)
	return comments, args.Error(1)
}

func (m *mockCommentRepository) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFinalizer struct {
	mock.Mock
}

func (m *mockFinalizer) Finalize(ctx context.Context, text string) (moderation.ContentRecord, error) {
	args := m.Called(ctx, text)
	record, _ := args.Get(0).(moderation.ContentRecord)
	return record, args.Error(1)
}

type mockPostCache struct {
	mock.Mock
}

func (m *mockPostCache) SavePost(ctx context.Context, entity *post.Post) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockPostCache) GetFeedPage(ctx context.Context, limit, offset int) ([]post.Post, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	posts, _ := args.Get(0).([]post.Post)
	return posts, args.Error(1)
}

func (m *mockPostCache) SaveFeedPage(ctx context.Context, limit, offset int, posts []post.Post) error {
	args := m.Called(ctx, limit, offset, posts)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	args := m.Called(ctx, ch, ev)
	return args.Error(0)
}
