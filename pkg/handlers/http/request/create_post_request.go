package request

type CreatePostRequest struct {
	Text string `json:"text"` // @required
}
