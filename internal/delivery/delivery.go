// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP server, worker loop).
// Serve blocks until the endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
