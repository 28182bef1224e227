package service

import (
	"context"
	"fmt"

	"mini-rules/internal/capability"
	"mini-rules/internal/rules"

	"github.com/rs/zerolog"
)

// WelcomeMessage is sent to every new account.
const WelcomeMessage = "Welcome aboard!"

// accountService implements AccountService.
type accountService struct {
	notifier capability.Notifier
	codes    capability.CodeGenerator
	logger   zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(notifier capability.Notifier, codes capability.CodeGenerator, logger zerolog.Logger) AccountService {
	return &accountService{
		notifier: notifier,
		codes:    codes,
		logger:   logger.With().Str("service", "account").Logger(),
	}
}

// SignUp returns false without notifying anyone when email is malformed.
func (s *accountService) SignUp(ctx context.Context, email string) (bool, error) {
	if !rules.IsValidEmail(email) {
		s.logger.Debug().Str("email", email).Msg("sign-up rejected: invalid email")
		return false, nil
	}

	if err := s.notifier.Notify(ctx, email, WelcomeMessage); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to send welcome message")
		return false, fmt.Errorf("failed to send welcome message: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("account signed up")
	return true, nil
}

// Login sends a freshly generated one-time code to email.
func (s *accountService) Login(ctx context.Context, email string) error {
	code, err := s.codes.GenerateCode()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate login code")
		return fmt.Errorf("failed to generate login code: %w", err)
	}

	if err := s.notifier.Notify(ctx, email, code); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to send login code")
		return fmt.Errorf("failed to send login code: %w", err)
	}

	s.logger.Debug().Str("email", email).Msg("login code sent")
	return nil
}
