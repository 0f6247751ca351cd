package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer is the fallback provider for deployments without a SendGrid
// key, typically Gmail SMTP in local development.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
}

func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) (Result, error) {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)

	// gomail has no context support, so the dial runs on its own goroutine
	// and we bail out if the caller's deadline passes first.
	done := make(chan error, 1)
	go func() {
		done <- retry(2, 500*time.Millisecond, func() error {
			return dialer.DialAndSend(gm)
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return Result{}, err
		}
		return Result{Sent: true, Method: "smtp"}, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// retry executes a function with exponential backoff.
func retry(attempts int, sleep time.Duration, f func() error) error {
	for i := 0; i < attempts; i++ {
		err := f()
		if err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		log.Printf("⚠️ SMTP error: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts", attempts)
}
