package channel

type Channel string

const (
	FeedEventsChannel Channel = "feedguard:events"
)
