// Package delivery defines the shared contract of the serving surfaces.
package delivery

import "context"

// Delivery is one serving surface of the application, such as the public HTTP
// API or the worker that receives pushed change events.
type Delivery interface {
	// Serve blocks serving requests until the server shuts down.
	Serve(ctx context.Context) error
}
