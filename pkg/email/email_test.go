package email

import (
	"context"
	"testing"

	"stepfault-backend/config"

	"github.com/stretchr/testify/assert"
)

func fullConfig() *config.Config {
	return &config.Config{
		SMTPHost:          "smtp.zoho.com",
		SMTPPort:          "465",
		SMTPEmail:         "hello@stepfault.com",
		SMTPPassword:      "secret",
		NotificationEmail: "admin@stepfault.com",
	}
}

func TestIsConfigured(t *testing.T) {
	t.Run("full credentials", func(t *testing.T) {
		assert.True(t, NewService(fullConfig()).IsConfigured())
	})

	t.Run("missing password", func(t *testing.T) {
		cfg := fullConfig()
		cfg.SMTPPassword = ""
		assert.False(t, NewService(cfg).IsConfigured())
	})

	t.Run("missing sender address", func(t *testing.T) {
		cfg := fullConfig()
		cfg.SMTPEmail = ""
		assert.False(t, NewService(cfg).IsConfigured())
	})
}

func TestUnconfiguredSendsAreSkipped(t *testing.T) {
	cfg := fullConfig()
	cfg.SMTPPassword = ""
	s := NewService(cfg)

	err := s.NotifyAdmin(context.Background(), "John", "john@example.com", "Hello there, testing.")
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = s.NotifySubmitter(context.Background(), "John", "john@example.com")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNotifyAdminRequiresDestination(t *testing.T) {
	cfg := fullConfig()
	cfg.NotificationEmail = ""
	s := NewService(cfg)

	err := s.NotifyAdmin(context.Background(), "John", "john@example.com", "Hello there, testing.")
	assert.ErrorContains(t, err, "NOTIFICATION_EMAIL")
}

func TestBuildMessage(t *testing.T) {
	s := NewService(fullConfig())

	msg := string(s.buildMessage("admin@stepfault.com", "New Contact Form Submission from John", "body text"))

	assert.Contains(t, msg, "From: hello@stepfault.com\r\n")
	assert.Contains(t, msg, "To: admin@stepfault.com\r\n")
	assert.Contains(t, msg, "Subject: New Contact Form Submission from John\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, msg, "\r\n\r\nbody text")
}
