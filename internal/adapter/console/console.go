// Package console provides stand-in implementations of the notification
// collaborators: a permission gate driven by static configuration and a
// delivery channel that writes messages to the process log. Real gates and
// channels live outside this repository; these keep the binary runnable
// end-to-end.
package console

import (
	"context"
	"log"

	"weighttracker/internal/domain"
)

// Gate answers permission queries from a fixed policy.
type Gate struct {
	granted bool
}

// NewGate creates a gate with the given static policy.
func NewGate(granted bool) *Gate {
	return &Gate{granted: granted}
}

var _ domain.PermissionGate = (*Gate)(nil)

// Check reports the configured decision.
func (g *Gate) Check(ctx context.Context) domain.Decision {
	if g.granted {
		return domain.Granted
	}
	return domain.Denied
}

// Request resolves immediately with the configured decision.
func (g *Gate) Request(ctx context.Context) <-chan domain.Decision {
	ch := make(chan domain.Decision, 1)
	ch <- g.Check(ctx)
	return ch
}

// Delivery acknowledges every send after logging it.
type Delivery struct{}

var _ domain.DeliveryChannel = Delivery{}

// Send logs the message and acknowledges on the returned channel.
func (Delivery) Send(ctx context.Context, destination, message string) <-chan error {
	ch := make(chan error, 1)
	go func() {
		log.Printf("delivery: to=%s message=%q", destination, message)
		ch <- nil
	}()
	return ch
}
