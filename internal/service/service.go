// Package service holds the library entry points for pricing, orders, accounts
// and pages. Callers construct each service with the capabilities it depends on.
package service

import (
	"context"

	"mini-rules/internal/model"
)

// PricingService defines pricing lookups that depend on external quotes.
type PricingService interface {
	// PriceInCurrency converts price into the target ISO-4217 currency.
	PriceInCurrency(ctx context.Context, price float64, currency string) (float64, error)

	// ShippingInfo describes the shipping cost to destination, or reports it unavailable.
	ShippingInfo(ctx context.Context, destination string) (string, error)
}

// OrderService defines operations for order submission.
type OrderService interface {
	// SubmitOrder charges the card once for the order total.
	SubmitOrder(ctx context.Context, order model.Order, card model.CreditCard) (model.OrderResult, error)
}

// AccountService defines sign-up and login flows.
type AccountService interface {
	// SignUp sends a welcome message to a well-formed email and reports whether it did.
	SignUp(ctx context.Context, email string) (bool, error)

	// Login sends a one-time login code to email.
	Login(ctx context.Context, email string) error
}

// PageService renders tracked pages.
type PageService interface {
	// RenderPage records a page view and returns the page content.
	RenderPage(ctx context.Context) (string, error)
}
