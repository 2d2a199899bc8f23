package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/contactsphere/contacts-system/internal/core/ports"
)

// SMTPConfig holds settings for the outbound mail server and the sender
// identity used in confirmation emails.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the public origin of this API, used to build the
	// confirmation link.
	BaseURL string
}

// SMTPSender delivers confirmation emails over plain SMTP.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendConfirmation(_ context.Context, mail ports.ConfirmationMail) error {
	link := fmt.Sprintf("%s/auth/confirmed_email/%s",
		strings.TrimRight(s.cfg.BaseURL, "/"), mail.Token)

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + mail.To,
		"Subject: Confirm your email",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Hi " + mail.Username + ",",
		"",
		"Please confirm your email address by opening the link below:",
		link,
		"",
		"The link is valid for 24 hours. If you did not register, ignore this message.",
	}, "\r\n")

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{mail.To}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
