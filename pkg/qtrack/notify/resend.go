package notify

import (
	"context"
	"time"

	"github.com/resend/resend-go/v2"
)

// sendTimeout bounds the provider call so a slow email API cannot hold up
// the triggering request.
const sendTimeout = 5 * time.Second

// ResendNotifier delivers messages through the Resend transactional-email
// API.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

// NewResendNotifier creates a notifier using the given API key and sender
// address.
func NewResendNotifier(apiKey, from string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one batched email to all recipients. Empty recipient list
// is a no-op.
func (n *ResendNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	sent, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
