package ports

import "context"

// ConfirmationMail is the payload queued after a successful registration.
type ConfirmationMail struct {
	To       string
	Username string
	Token    string
}

// MailSender delivers a single confirmation email. Delivery is an external
// concern; implementations may talk SMTP, an API, or a test double.
type MailSender interface {
	SendConfirmation(ctx context.Context, mail ConfirmationMail) error
}

// MailQueue decouples mail dispatch from the request path. Enqueue must
// return without waiting for delivery; failures are logged by the consumer
// and never surfaced to the caller.
type MailQueue interface {
	Enqueue(mail ConfirmationMail)
}
