package feed

import (
	"context"
	"testing"

	"github.com/feedguard/feedguard/pkg/domain"
	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentCreator_AttachesToParentPost(t *testing.T) {
	comments := new(mockCommentRepository)
	posts := new(mockPostRepository)
	finalizer := new(mockFinalizer)
	publisher := new(mockEventPublisher)

	postID := uuid.New()
	parent := &post.Post{ID: postID, AuthorID: "author-1"}
	posts.On("Get", mock.Anything, postID).Return(parent, nil)

	verdict := moderation.SafeDefault("nice post")
	finalizer.On("Finalize", mock.Anything, "nice post").Return(moderation.ContentRecord{
		DisplayedText: "nice post",
		Verdict:       &verdict,
	}, nil)
	comments.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, channel.FeedEventsChannel, mock.MatchedBy(func(ev event.Event) bool {
		created, ok := ev.(event.CommentCreatedEvent)
		return ok && created.PostAuthorID == "author-1" && created.AuthorID == "user-2"
	})).Return(nil)

	creator := NewCommentCreator(testLogger(), comments, posts, finalizer, publisher)
	author := jwt.Identity{UserID: "user-2", DisplayName: "Grace"}

	entity, err := creator.Create(context.Background(), author, postID, "nice post")
	require.NoError(t, err)
	assert.Equal(t, postID, entity.PostID)
	assert.Equal(t, "nice post", entity.DisplayedText)

	publisher.AssertExpectations(t)
}

func TestCommentCreator_ParentNotFound(t *testing.T) {
	comments := new(mockCommentRepository)
	posts := new(mockPostRepository)
	finalizer := new(mockFinalizer)
	publisher := new(mockEventPublisher)

	postID := uuid.New()
	posts.On("Get", mock.Anything, postID).Return(nil, domain.NewNotFoundError("post", postID))

	creator := NewCommentCreator(testLogger(), comments, posts, finalizer, publisher)

	_, err := creator.Create(context.Background(), jwt.Identity{UserID: "user-2"}, postID, "hello")
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	finalizer.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
}

func TestCommentCreator_ToxicCommentKeepsOriginal(t *testing.T) {
	comments := new(mockCommentRepository)
	posts := new(mockPostRepository)
	finalizer := new(mockFinalizer)
	publisher := new(mockEventPublisher)

	postID := uuid.New()
	posts.On("Get", mock.Anything, postID).Return(&post.Post{ID: postID, AuthorID: "author-1"}, nil)

	verdict := moderation.Verdict{IsToxic: true, Level: moderation.LevelToxic, DetectedCategories: []string{"insult"}}
	finalizer.On("Finalize", mock.Anything, "You are an idiot").Return(moderation.ContentRecord{
		DisplayedText: "You are an ****",
		OriginalText:  "You are an idiot",
		Verdict:       &verdict,
	}, nil)
	comments.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	creator := NewCommentCreator(testLogger(), comments, posts, finalizer, publisher)

	entity, err := creator.Create(context.Background(), jwt.Identity{UserID: "user-2"}, postID, "You are an idiot")
	require.NoError(t, err)
	assert.Equal(t, "You are an ****", entity.DisplayedText)
	assert.Equal(t, "You are an idiot", entity.OriginalText)
}
