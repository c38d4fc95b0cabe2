// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until its
// context is cancelled or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
