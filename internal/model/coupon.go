package model

import "github.com/shopspring/decimal"

// Coupon is a discount code with a fractional discount in (0, 1).
type Coupon struct {
	Code     string          `json:"code" db:"code"`
	Discount decimal.Decimal `json:"discount" db:"discount"`
}
