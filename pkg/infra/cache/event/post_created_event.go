package event

type PostCreatedEvent struct {
	PostID     string `json:"post_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
}

func (e PostCreatedEvent) Type() string {
	return PostCreatedEventType
}
