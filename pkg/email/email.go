package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"stepfault-backend/config"
)

// ErrNotConfigured is returned when SMTP credentials or the notification
// destination are missing. Sends are skipped, not attempted.
var ErrNotConfigured = errors.New("email: SMTP credentials not configured")

const dialTimeout = 10 * time.Second

// Service sends contact form emails over an authenticated implicit-TLS
// SMTP session (Zoho, port 465).
type Service struct {
	host              string
	port              string
	email             string
	password          string
	notificationEmail string
}

// NewService creates an email service from the SMTP configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:              cfg.SMTPHost,
		port:              cfg.SMTPPort,
		email:             cfg.SMTPEmail,
		password:          cfg.SMTPPassword,
		notificationEmail: cfg.NotificationEmail,
	}
}

// IsConfigured checks if the service has valid SMTP credentials.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.email != "" && s.password != ""
}

// NotifyAdmin sends the new-submission alert to the configured
// notification address.
func (s *Service) NotifyAdmin(ctx context.Context, name, email, message string) error {
	if s.notificationEmail == "" {
		return errors.New("email: NOTIFICATION_EMAIL not set, skipping notification")
	}
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", name)
	body := fmt.Sprintf(`New contact form submission received:

Name: %s
Email: %s
Message:
%s

---
This is an automated notification from StepFault contact form.
`, name, email, message)

	return s.send(ctx, s.notificationEmail, subject, body)
}

// NotifySubmitter sends the auto-reply acknowledgment to the person who
// submitted the form.
func (s *Service) NotifySubmitter(ctx context.Context, name, email string) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	subject := "Thank you for contacting StepFault"
	body := fmt.Sprintf(`Hello %s,

Thank you for reaching out to StepFault! We've received your message and will get back to you as soon as possible.

We appreciate your interest in our Creative AI & Quantum Computing Solutions.

Best regards,
The StepFault Team

---
This is an automated response. Please do not reply to this email.
`, name)

	return s.send(ctx, email, subject, body)
}

// buildMessage constructs a plain-text MIME message.
func (s *Service) buildMessage(to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.email,
		to,
		subject,
		body,
	))
}

// send delivers one message over an implicit-TLS SMTP session. Zoho's
// port 465 speaks TLS from the first byte, so smtp.SendMail (which expects
// STARTTLS) cannot be used here.
func (s *Service) send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(s.host, s.port)

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return fmt.Errorf("email: failed to dial %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("email: SMTP handshake failed: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.email, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("email: authentication failed: %w", err)
	}
	if err := client.Mail(s.email); err != nil {
		return fmt.Errorf("email: MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("email: RCPT TO rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("email: DATA rejected: %w", err)
	}
	if _, err := w.Write(s.buildMessage(to, subject, body)); err != nil {
		return fmt.Errorf("email: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("email: failed to finish message: %w", err)
	}

	return client.Quit()
}
