package notify

import (
	"context"
	"log"
)

// Message is a single transactional email.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
}

// Result reports how (or whether) a message went out.
type Result struct {
	Sent   bool
	Method string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// Chain tries each configured mailer in order and returns the first success.
// With no mailers configured it returns a non-error "not sent" result, so a
// bare deployment still serves requests.
type Chain struct {
	mailers []Mailer
}

func NewChain(mailers ...Mailer) *Chain {
	return &Chain{mailers: mailers}
}

func (c *Chain) Send(ctx context.Context, msg Message) (Result, error) {
	if len(c.mailers) == 0 {
		log.Println("⚠️  No email provider configured, skipping send")
		return Result{}, nil
	}

	var lastErr error
	for _, m := range c.mailers {
		res, err := m.Send(ctx, msg)
		if err == nil {
			return res, nil
		}
		lastErr = err
		log.Printf("⚠️  Email provider failed, trying next: %v", err)
	}
	return Result{}, lastErr
}
