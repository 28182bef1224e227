package coupon

import (
	"fmt"

	"mini-rules/internal/model"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// mapTable implements Table using a map for O(1) lookups.
type mapTable struct {
	coupons map[string]model.Coupon
	order   []string
}

// NewTable creates a table from coupons. Codes must be non-empty and
// unique, and every discount must lie strictly between 0 and 1.
func NewTable(coupons ...model.Coupon) (Table, error) {
	t := &mapTable{
		coupons: make(map[string]model.Coupon, len(coupons)),
		order:   make([]string, 0, len(coupons)),
	}

	for _, c := range coupons {
		if err := ValidateCoupon(c); err != nil {
			return nil, err
		}
		if _, exists := t.coupons[c.Code]; exists {
			return nil, fmt.Errorf("duplicate coupon code %q", c.Code)
		}
		t.coupons[c.Code] = c
		t.order = append(t.order, c.Code)
	}

	return t, nil
}

// ValidateCoupon checks the coupon invariants.
func ValidateCoupon(c model.Coupon) error {
	if c.Code == "" {
		return model.ErrInvalidCoupon
	}
	if !c.Discount.GreaterThan(decimal.Zero) || !c.Discount.LessThan(one) {
		return fmt.Errorf("coupon %s: %w", c.Code, model.ErrInvalidCoupon)
	}
	return nil
}

// Lookup returns the coupon registered under code.
func (t *mapTable) Lookup(code string) (model.Coupon, bool) {
	c, ok := t.coupons[code]
	return c, ok
}

// Coupons returns every coupon in load order.
func (t *mapTable) Coupons() []model.Coupon {
	out := make([]model.Coupon, len(t.order))
	for i, code := range t.order {
		out[i] = t.coupons[code]
	}
	return out
}

// Size returns the number of coupons in the table.
func (t *mapTable) Size() int {
	return len(t.coupons)
}

// builtinCoupons are the coupons available without any external source.
var builtinCoupons = []model.Coupon{
	{Code: "SAVE10", Discount: decimal.RequireFromString("0.1")},
	{Code: "SAVE20", Discount: decimal.RequireFromString("0.2")},
}

// DefaultTable returns the built-in coupon table.
func DefaultTable() Table {
	t, err := NewTable(builtinCoupons...)
	if err != nil {
		panic(err)
	}
	return t
}

// GetCoupons returns the built-in coupons.
func GetCoupons() []model.Coupon {
	return DefaultTable().Coupons()
}

// Merge combines tables in order. A code present in several tables takes
// the discount from the last one and keeps its first position.
func Merge(tables ...Table) Table {
	merged := &mapTable{coupons: make(map[string]model.Coupon)}
	for _, t := range tables {
		for _, c := range t.Coupons() {
			if _, exists := merged.coupons[c.Code]; !exists {
				merged.order = append(merged.order, c.Code)
			}
			merged.coupons[c.Code] = c
		}
	}
	return merged
}
