// Package mailx delivers outbound notification email. Delivery failures are
// reported to the caller, never retried here.
package mailx

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/wneessen/go-mail"
)

// Notifier sends account-related email to a recipient.
type Notifier interface {
	// SendPasswordReset delivers a reset token to the address that requested it.
	SendPasswordReset(ctx context.Context, to, token string) error
}

// SMTPConfig holds delivery settings for the SMTP notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender address, e.g. no-reply@example.com
	BaseURL  string // public base URL used to build reset links
}

// SMTPNotifier delivers mail over SMTP using go-mail.
type SMTPNotifier struct {
	cfg    SMTPConfig
	client *mail.Client
}

// NewSMTPNotifier builds a notifier from config. The connection is dialled
// lazily per send.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailx: failed to create smtp client: %w", err)
	}

	return &SMTPNotifier{cfg: cfg, client: client}, nil
}

func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, to, token string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("mailx: invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailx: invalid recipient address: %w", err)
	}

	msg.Subject("Reset your password")
	msg.SetBodyString(mail.TypeTextPlain, resetBody(n.cfg.BaseURL, to, token))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailx: failed to send password reset mail: %w", err)
	}
	return nil
}

func resetBody(baseURL, to, token string) string {
	link := fmt.Sprintf("%s/reset-password?email=%s&token=%s",
		baseURL, url.QueryEscape(to), url.QueryEscape(token))

	return "We received a request to reset the password for your account.\n\n" +
		"Open the link below within 60 minutes to choose a new password:\n\n" +
		link + "\n\n" +
		"If you did not request this, you can ignore this message.\n"
}

// LogNotifier writes the reset token to the log instead of sending mail.
// Intended for development and tests only.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) SendPasswordReset(ctx context.Context, to, token string) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("password reset requested (log notifier, mail not sent)",
		"to", to,
		"token", token,
	)
	return nil
}
