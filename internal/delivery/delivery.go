// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// entrypoint. Implementations block in Serve until stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
