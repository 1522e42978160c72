package event

type ContentFlaggedEvent struct {
	PostID        string   `json:"post_id"`
	AuthorID      string   `json:"author_id"`
	ToxicityLevel string   `json:"toxicity_level"`
	Categories    []string `json:"categories"`
}

func (e ContentFlaggedEvent) Type() string {
	return ContentFlaggedEventType
}
