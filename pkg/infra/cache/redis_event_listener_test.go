package cache

import (
	"context"
	"encoding/json"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/feedguard/feedguard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	mu     sync.Mutex
	events []event.PostCreatedEvent
}

func (s *recordingSubscriber) OnEvent(ctx context.Context, ev event.PostCreatedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func newTestListener() *redisEventListener {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &redisEventListener{
		logger:      logger,
		subscribers: make(map[reflect.Type][]interface{}),
		registry:    event.Registry,
	}
}

func envelope(t *testing.T, ev event.Event) string {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	data, err := json.Marshal(RedisMessage{Type: ev.Type(), Event: b})
	require.NoError(t, err)
	return string(data)
}

func TestRedisEventListener_DispatchesToSubscriber(t *testing.T) {
	listener := newTestListener()
	sub := &recordingSubscriber{}
	RegisterEventSubscriber[event.PostCreatedEvent](listener, sub)

	listener.handleMessage(context.Background(), envelope(t, event.PostCreatedEvent{
		PostID:   "post-1",
		AuthorID: "user-1",
	}))

	require.Len(t, sub.events, 1)
	assert.Equal(t, "post-1", sub.events[0].PostID)
}

func TestRedisEventListener_MultipleSubscribersSameEvent(t *testing.T) {
	listener := newTestListener()
	first := &recordingSubscriber{}
	second := &recordingSubscriber{}
	RegisterEventSubscriber[event.PostCreatedEvent](listener, first)
	RegisterEventSubscriber[event.PostCreatedEvent](listener, second)

	listener.handleMessage(context.Background(), envelope(t, event.PostCreatedEvent{PostID: "post-1"}))

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestRedisEventListener_UnknownEventType(t *testing.T) {
	listener := newTestListener()
	sub := &recordingSubscriber{}
	RegisterEventSubscriber[event.PostCreatedEvent](listener, sub)

	payload, err := json.Marshal(RedisMessage{Type: "NoSuchEvent", Event: []byte(`{}`)})
	require.NoError(t, err)

	listener.handleMessage(context.Background(), string(payload))
	assert.Empty(t, sub.events)
}

func TestRedisEventListener_MalformedPayload(t *testing.T) {
	listener := newTestListener()
	sub := &recordingSubscriber{}
	RegisterEventSubscriber[event.PostCreatedEvent](listener, sub)

	listener.handleMessage(context.Background(), "{not json")
	assert.Empty(t, sub.events)
}
