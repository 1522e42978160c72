package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/feedguard/feedguard/pkg/infra/cache/channel"
	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisEventPublisher_PublishesEnvelope(t *testing.T) {
	c, mock := newTestClient(t)

	ev := event.PostCreatedEvent{PostID: "post-1", AuthorID: "user-1"}
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	data, err := json.Marshal(RedisMessage{Type: ev.Type(), Event: b})
	require.NoError(t, err)

	mock.ExpectPublish(string(channel.FeedEventsChannel), data).SetVal(1)

	publisher := NewRedisEventPublisher(c)
	err = publisher.Publish(context.Background(), channel.FeedEventsChannel, ev)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
