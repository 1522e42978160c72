package event

import "reflect"

type Event interface {
	Type() string
}

var (
	PostCreatedEventType    = "PostCreatedEvent"
	CommentCreatedEventType = "CommentCreatedEvent"
	ContentFlaggedEventType = "ContentFlaggedEvent"
)

var Registry = map[string]reflect.Type{
	PostCreatedEventType:    reflect.TypeOf(PostCreatedEvent{}),
	CommentCreatedEventType: reflect.TypeOf(CommentCreatedEvent{}),
	ContentFlaggedEventType: reflect.TypeOf(ContentFlaggedEvent{}),
}
