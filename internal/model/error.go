package model

// Standard error codes for rejected inputs and capability outcomes.
const (
	ErrCodeInvalidPrice        = "INVALID_PRICE"
	ErrCodeNegativePrice       = "NEGATIVE_PRICE"
	ErrCodeInvalidDiscountCode = "INVALID_DISCOUNT_CODE"
	ErrCodeInvalidCountryCode  = "INVALID_COUNTRY_CODE"
	ErrCodeInvalidCurrency     = "INVALID_CURRENCY"
	ErrCodeInvalidCoupon       = "INVALID_COUPON"
	ErrCodeInvalidEmail        = "INVALID_EMAIL"
	ErrCodePaymentError        = "PAYMENT_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidPrice        = NewDomainError(ErrCodeInvalidPrice, "Invalid price: must be a number")
	ErrNegativePrice       = NewDomainError(ErrCodeNegativePrice, "Invalid price: must not be negative")
	ErrInvalidDiscountCode = NewDomainError(ErrCodeInvalidDiscountCode, "Invalid discount code")
	ErrInvalidCountryCode  = NewDomainError(ErrCodeInvalidCountryCode, "Invalid country code")
	ErrInvalidCurrency     = NewDomainError(ErrCodeInvalidCurrency, "Invalid currency code")
	ErrInvalidCoupon       = NewDomainError(ErrCodeInvalidCoupon, "Invalid coupon: code must be non-empty and discount between 0 and 1")
	ErrInvalidEmail        = NewDomainError(ErrCodeInvalidEmail, "Invalid email address")
)
