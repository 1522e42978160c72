package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*client, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	return &client{
		redisClient: db,
		feedTTL:     time.Minute,
	}, mock
}

func TestClient_GetFallsBackToRedis(t *testing.T) {
	c, mock := newTestClient(t)
	mock.ExpectGet("some-key").SetVal("some-value")

	got, err := c.Get(context.Background(), "some-key")
	require.NoError(t, err)
	assert.Equal(t, "some-value", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetPopulatesLocalCache(t *testing.T) {
	c, mock := newTestClient(t)
	mock.ExpectSet("some-key", "some-value", time.Minute).SetVal("OK")

	err := c.Set(context.Background(), "some-key", "some-value", time.Minute)
	require.NoError(t, err)

	// second read comes from the local cache, no redis expectation needed
	got, err := c.Get(context.Background(), "some-key")
	require.NoError(t, err)
	assert.Equal(t, "some-value", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Delete(t *testing.T) {
	c, mock := newTestClient(t)
	mock.ExpectSet("some-key", "v", time.Minute).SetVal("OK")
	mock.ExpectDel("some-key").SetVal(1)
	mock.ExpectGet("some-key").RedisNil()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "some-key", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "some-key"))

	_, err := c.Get(ctx, "some-key")
	assert.Error(t, err)
}

func TestClient_FeedPageRoundTrip(t *testing.T) {
	c, mock := newTestClient(t)

	posts := []post.Post{{ID: uuid.New(), AuthorID: "user-1", DisplayedText: "hello"}}
	data, err := json.Marshal(posts)
	require.NoError(t, err)

	mock.ExpectSet("feed:recent:20:0", string(data), time.Minute).SetVal("OK")

	ctx := context.Background()
	require.NoError(t, c.SaveFeedPage(ctx, 20, 0, posts))

	got, err := c.GetFeedPage(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].DisplayedText)
}

func TestClient_SavePostRoundTrip(t *testing.T) {
	c, mock := newTestClient(t)

	entity := &post.Post{ID: uuid.New(), AuthorID: "user-1", DisplayedText: "hello"}
	data, err := json.Marshal(entity)
	require.NoError(t, err)

	mock.ExpectSet("post:"+entity.ID.String(), string(data), time.Minute).SetVal("OK")

	ctx := context.Background()
	require.NoError(t, c.SavePost(ctx, entity))

	got, err := c.GetPost(ctx, entity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "hello", got.DisplayedText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_InvalidateFeed(t *testing.T) {
	c, mock := newTestClient(t)
	mock.ExpectScan(0, "feed:*", 100).SetVal([]string{"feed:recent:20:0"}, 0)
	mock.ExpectDel("feed:recent:20:0").SetVal(1)

	err := c.InvalidateFeed(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_TTLMaps(t *testing.T) {
	c, _ := newTestClient(t)

	created := c.CreateTTLMap("verdict", time.Minute)
	created.Set("abc", "value")

	got := c.GetTTLMap("verdict")
	require.NotNil(t, got)
	value, ok := got.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	assert.Nil(t, c.GetTTLMap("missing"))

	c.ClearAllTTLMaps()
	_, ok = got.Get("abc")
	assert.False(t, ok)
}
