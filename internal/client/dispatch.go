package client

import (
	"context"
	"net/url"
)

// Request describes one outbound API call in backend-neutral terms.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Public marks endpoints that never receive the API-key header.
	Public bool
}

// Dispatcher executes a Request against a backend and decodes the response
// into out. The HTTP dispatcher talks to the remote WordPress API; the mock
// responder serves synthetic data. Selected once at construction time.
type Dispatcher interface {
	Do(ctx context.Context, req Request, out any) error
}
