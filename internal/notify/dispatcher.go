package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Dispatcher sends messages off the request path. Failures are logged and
// never surfaced to the triggering request.
type Dispatcher struct {
	mailer  Mailer
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(m Mailer) *Dispatcher {
	return &Dispatcher{mailer: m, timeout: 30 * time.Second}
}

// Dispatch queues a send on its own goroutine and returns immediately.
func (d *Dispatcher) Dispatch(msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		res, err := d.mailer.Send(ctx, msg)
		if err != nil {
			log.Printf("❌ Email to %s failed: %v", msg.To, err)
			return
		}
		if !res.Sent {
			return
		}
		log.Printf("✅ Email sent to %s via %s", msg.To, res.Method)
	}()
}

// Wait blocks until all in-flight sends finish. Called during shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
