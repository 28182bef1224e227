package model

import "github.com/google/uuid"

// PaymentErrorCode is reported in OrderResult.Error when a charge is declined.
const PaymentErrorCode = "payment_error"

// Order represents a customer order awaiting payment.
type Order struct {
	ID          uuid.UUID `json:"id"`
	TotalAmount float64   `json:"totalAmount"`
}

// CreditCard is the payment instrument handed to the payment processor.
type CreditCard struct {
	CreditCardNumber string `json:"creditCardNumber"`
}

// ChargeStatus is the outcome reported by a payment processor.
type ChargeStatus string

const (
	ChargeSuccess ChargeStatus = "success"
	ChargeFailed  ChargeStatus = "failed"
)

// ChargeResult represents the response of a single charge attempt.
type ChargeResult struct {
	Status ChargeStatus `json:"status"`
}

// OrderResult represents the outcome of submitting an order.
type OrderResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
