// Package notify delivers account messages to users.
package notify

import (
	"context"
	"errors"
	"fmt"

	"mini-rules/internal/capability"
	"mini-rules/internal/config"

	"github.com/mrz1836/postmark"
	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when Postmark credentials are missing.
var ErrNotConfigured = errors.New("postmark notifier is not configured")

const defaultSubject = "Your account"

// EmailSender is the subset of the Postmark client used for delivery.
type EmailSender interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

type postmarkNotifier struct {
	client EmailSender
	from   string
	logger zerolog.Logger
}

// NewPostmarkNotifier creates a Notifier that sends plain-text emails through Postmark.
func NewPostmarkNotifier(cfg config.EmailConfig, logger zerolog.Logger) (capability.Notifier, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrNotConfigured)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email is required", ErrNotConfigured)
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	return NewPostmarkNotifierWithClient(client, cfg.SenderEmail, logger), nil
}

// NewPostmarkNotifierWithClient creates a Postmark notifier with a custom client (for testing).
func NewPostmarkNotifierWithClient(client EmailSender, from string, logger zerolog.Logger) capability.Notifier {
	return &postmarkNotifier{
		client: client,
		from:   from,
		logger: logger.With().Str("notifier", "postmark").Logger(),
	}
}

func (n *postmarkNotifier) Notify(ctx context.Context, recipient, message string) error {
	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     n.from,
		To:       recipient,
		Subject:  defaultSubject,
		TextBody: message,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("recipient", recipient).Msg("failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}
	if resp.ErrorCode > 0 {
		n.logger.Error().
			Int64("error_code", resp.ErrorCode).
			Str("recipient", recipient).
			Msg("postmark rejected email")
		return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}

	n.logger.Debug().Str("recipient", recipient).Str("message_id", resp.MessageID).Msg("email sent")
	return nil
}
