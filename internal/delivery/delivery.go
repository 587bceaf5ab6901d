// Package delivery defines the entry points that expose the usecases.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server.
type Delivery interface {
	// Serve blocks until the adapter stops or fails.
	Serve(ctx context.Context) error
}
