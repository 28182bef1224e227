package service

import (
	"context"
	"fmt"
	"strconv"

	"mini-rules/internal/capability"
	"mini-rules/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

// ShippingUnavailable is reported when no quote can be obtained.
const ShippingUnavailable = "Shipping Unavailable"

// pricingService implements PricingService.
type pricingService struct {
	rates  capability.ExchangeRates
	quotes capability.ShippingQuotes
	logger zerolog.Logger
}

// NewPricingService creates a new pricing service.
func NewPricingService(rates capability.ExchangeRates, quotes capability.ShippingQuotes, logger zerolog.Logger) PricingService {
	return &pricingService{
		rates:  rates,
		quotes: quotes,
		logger: logger.With().Str("service", "pricing").Logger(),
	}
}

// PriceInCurrency converts price using the current exchange rate.
func (s *pricingService) PriceInCurrency(ctx context.Context, price float64, code string) (float64, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		s.logger.Warn().Str("currency", code).Msg("invalid currency code")
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidCurrency, code)
	}

	rate, err := s.rates.ExchangeRate(ctx, unit.String())
	if err != nil {
		s.logger.Error().Err(err).Str("currency", unit.String()).Msg("failed to look up exchange rate")
		return 0, fmt.Errorf("failed to look up exchange rate for %s: %w", unit, err)
	}

	return price * rate, nil
}

// ShippingInfo formats the shipping quote for destination.
func (s *pricingService) ShippingInfo(ctx context.Context, destination string) (string, error) {
	quote, err := s.quotes.ShippingQuote(ctx, destination)
	if err != nil {
		s.logger.Error().Err(err).Str("destination", destination).Msg("failed to look up shipping quote")
		return "", fmt.Errorf("failed to look up shipping quote for %s: %w", destination, err)
	}

	if quote == nil {
		s.logger.Info().Str("destination", destination).Msg("no shipping quote available")
		return ShippingUnavailable, nil
	}

	return fmt.Sprintf("Shipping Cost: $%s (%d Days)",
		strconv.FormatFloat(quote.Cost, 'f', -1, 64),
		quote.EstimatedDays,
	), nil
}
