// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the application.
// Serve blocks until the server stops and returns nil on a graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
