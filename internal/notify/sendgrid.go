package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer is the primary provider.
type SendGridMailer struct {
	client *sendgrid.Client
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) (Result, error) {
	email := sgmail.NewSingleEmail(
		sgmail.NewEmail("", msg.From),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		"",
		msg.HTML,
	)

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return Result{Sent: true, Method: "sendgrid"}, nil
}
