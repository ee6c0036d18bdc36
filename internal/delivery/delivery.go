// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport (HTTP API, worker receiver). Servers are
// collected into an fx value group and started together from main.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
