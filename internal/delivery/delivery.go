// Package delivery defines the long-running entry points of the application.
package delivery

import "context"

// Delivery is a long-running entry point started at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
