package coupon

import (
	"context"

	"mini-rules/internal/model"
)

// Table is an immutable set of coupons keyed by code.
type Table interface {
	// Lookup returns the coupon registered under code.
	Lookup(code string) (model.Coupon, bool)

	// Coupons returns every coupon in load order.
	Coupons() []model.Coupon

	// Size returns the number of coupons in the table.
	Size() int
}

// Loader defines the interface for loading coupon tables.
type Loader interface {
	// Load reads a coupon source and returns its Table.
	Load(ctx context.Context, source string) (Table, error)
}

// DiscountCalculator applies coupon codes to prices.
type DiscountCalculator interface {
	// CalculateDiscount returns the price after applying code.
	// Invalid inputs are reported as *model.DomainError values whose
	// message contains "Invalid"; unknown codes leave the price unchanged.
	CalculateDiscount(price, code any) (float64, error)
}
