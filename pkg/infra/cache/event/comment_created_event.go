package event

type CommentCreatedEvent struct {
	CommentID    string `json:"comment_id"`
	PostID       string `json:"post_id"`
	PostAuthorID string `json:"post_author_id"`
	AuthorID     string `json:"author_id"`
	AuthorName   string `json:"author_name"`
}

func (e CommentCreatedEvent) Type() string {
	return CommentCreatedEventType
}
