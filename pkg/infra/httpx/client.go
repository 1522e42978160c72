package httpx

import "net/http"

// Client abstracts the HTTP transport used by outbound callers (the
// classifier client in particular) so tests can substitute a mock.
// *http.Client satisfies it directly.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
