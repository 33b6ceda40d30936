package domain

import "context"

// Decision is the outcome of a permission gate query.
type Decision int

const (
	Denied Decision = iota
	Granted
)

// String returns the decision name for logs.
func (d Decision) String() string {
	if d == Granted {
		return "granted"
	}
	return "denied"
}

// PermissionGate is the external capability controlling whether outbound
// notifications may be sent. Request issues an asynchronous grant request;
// the resolution arrives on the returned channel and may stay pending
// indefinitely.
type PermissionGate interface {
	Check(ctx context.Context) Decision
	Request(ctx context.Context) <-chan Decision
}

// DeliveryChannel is the external capability that transmits a notification
// message. Send is asynchronous: a nil value on the returned channel is the
// delivery acknowledgment, a non-nil value the reported failure.
type DeliveryChannel interface {
	Send(ctx context.Context, destination, message string) <-chan error
}
