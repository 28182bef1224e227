package service

import (
	"context"

	"mini-rules/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockExchangeRates is a mock implementation of capability.ExchangeRates.
type MockExchangeRates struct {
	mock.Mock
}

func (m *MockExchangeRates) ExchangeRate(ctx context.Context, currency string) (float64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Error(1)
}

// MockShippingQuotes is a mock implementation of capability.ShippingQuotes.
type MockShippingQuotes struct {
	mock.Mock
}

func (m *MockShippingQuotes) ShippingQuote(ctx context.Context, destination string) (*model.ShippingQuote, error) {
	args := m.Called(ctx, destination)
	if quote, ok := args.Get(0).(*model.ShippingQuote); ok {
		return quote, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPaymentProcessor is a mock implementation of capability.PaymentProcessor.
type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) Charge(ctx context.Context, card model.CreditCard, amount float64) (model.ChargeResult, error) {
	args := m.Called(ctx, card, amount)
	return args.Get(0).(model.ChargeResult), args.Error(1)
}

// MockNotifier is a mock implementation of capability.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, recipient, message string) error {
	args := m.Called(ctx, recipient, message)
	return args.Error(0)
}

// MockCodeGenerator is a mock implementation of capability.CodeGenerator.
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) GenerateCode() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockAnalytics is a mock implementation of capability.Analytics.
type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) TrackPageView(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
