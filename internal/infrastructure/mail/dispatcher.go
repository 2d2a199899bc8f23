// Package mail implements the background confirmation-email pipeline: a
// buffered queue with a single consumer, and an SMTP sender behind it.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contactsphere/contacts-system/internal/api/metrics"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

const defaultBuffer = 256

// Dispatcher queues confirmation emails and delivers them from a single
// consumer goroutine. Enqueue returns before delivery starts, so registration
// latency is independent of mail-server latency, and a delivery failure can
// only ever be logged, never returned to the HTTP caller.
type Dispatcher struct {
	queue  chan ports.ConfirmationMail
	sender ports.MailSender
	log    zerolog.Logger
}

// NewDispatcher creates a Dispatcher with the given queue capacity.
// If buffer <= 0, defaultBuffer is used.
func NewDispatcher(buffer int, sender ports.MailSender, log zerolog.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Dispatcher{
		queue:  make(chan ports.ConfirmationMail, buffer),
		sender: sender,
		log:    log,
	}
}

// Start launches the consumer goroutine. It stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

// Enqueue adds a mail to the queue without blocking. When the queue is full
// the mail is dropped and logged: the registration contract is "never wait
// for mail", and the user can request confirmation again.
func (d *Dispatcher) Enqueue(mail ports.ConfirmationMail) {
	select {
	case d.queue <- mail:
		metrics.MailQueueDepth.Set(float64(len(d.queue)))
	default:
		metrics.ConfirmationEmailsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", mail.To).Msg("mail queue full, confirmation email dropped")
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case mail, ok := <-d.queue:
			if !ok {
				return
			}
			metrics.MailQueueDepth.Set(float64(len(d.queue)))
			if err := d.sender.SendConfirmation(ctx, mail); err != nil {
				metrics.ConfirmationEmailsTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).Str("to", mail.To).Msg("confirmation email failed")
				continue
			}
			metrics.ConfirmationEmailsTotal.WithLabelValues("sent").Inc()
			d.log.Info().Str("to", mail.To).Msg("confirmation email sent")
		}
	}
}
