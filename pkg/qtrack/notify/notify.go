// Package notify sends structured escalation messages through a
// transactional-email provider. Delivery is best-effort: callers log a
// returned error and continue, the triggering operation never fails
// because an email did not go out.
package notify

import "context"

// Message is one outbound email, batched to all recipients in a single
// provider call (recipients see each other in shared headers; acceptable
// for an internal quality-staff alert).
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Notifier attempts delivery of a message, returning the provider message
// id on success. An empty recipient list is a no-op, not an error.
// Single attempt, no retry/backoff.
type Notifier interface {
	Send(ctx context.Context, msg Message) (string, error)
}
