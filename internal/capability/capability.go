// Package capability declares the external collaborators the rule evaluator
// and the order flows call into. Implementations are owned by the caller.
package capability

import (
	"context"
	"time"

	"mini-rules/internal/model"
)

// ExchangeRates looks up currency conversion rates.
type ExchangeRates interface {
	// ExchangeRate returns the multiplier that converts the base currency into currency.
	ExchangeRate(ctx context.Context, currency string) (float64, error)
}

// ShippingQuotes looks up shipping quotes.
type ShippingQuotes interface {
	// ShippingQuote returns nil without an error when no quote is available.
	ShippingQuote(ctx context.Context, destination string) (*model.ShippingQuote, error)
}

// PaymentProcessor charges payment instruments.
type PaymentProcessor interface {
	// Charge makes a single charge attempt. A declined charge is reported
	// through the result status, not as an error.
	Charge(ctx context.Context, card model.CreditCard, amount float64) (model.ChargeResult, error)
}

// Notifier delivers messages to a recipient.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// CodeGenerator produces one-time security codes.
type CodeGenerator interface {
	GenerateCode() (string, error)
}

// Analytics records page views.
type Analytics interface {
	TrackPageView(ctx context.Context, path string) error
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}
