package request

type ModerationPreviewRequest struct {
	Text string `json:"text"` // @required
}
