package notify

import (
	"context"

	"mini-rules/internal/capability"
	"mini-rules/internal/config"

	"github.com/rs/zerolog"
)

type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a Notifier that only writes messages to the log.
// It is used when no email provider is configured.
func NewLogNotifier(logger zerolog.Logger) capability.Notifier {
	return &logNotifier{logger: logger.With().Str("notifier", "log").Logger()}
}

func (n *logNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.logger.Info().Str("recipient", recipient).Int("body_length", len(message)).Msg("notification")
	// Bodies may hold one-time codes.
	n.logger.Debug().Str("recipient", recipient).Str("body", message).Msg("notification body")
	return nil
}

// New picks the Postmark notifier when it is configured and the log notifier otherwise.
func New(cfg config.EmailConfig, logger zerolog.Logger) (capability.Notifier, error) {
	if !cfg.Enabled() {
		return NewLogNotifier(logger), nil
	}
	return NewPostmarkNotifier(cfg, logger)
}
