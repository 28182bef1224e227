package coupon

import (
	"mini-rules/internal/model"
	"mini-rules/internal/rules"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// calculator implements DiscountCalculator over a coupon Table.
type calculator struct {
	table  Table
	logger zerolog.Logger
}

// NewCalculator creates a discount calculator backed by table.
func NewCalculator(table Table, logger zerolog.Logger) DiscountCalculator {
	return &calculator{
		table:  table,
		logger: logger.With().Str("component", "discount-calculator").Logger(),
	}
}

// CalculateDiscount returns price * (1 - discount) for a known code.
func (c *calculator) CalculateDiscount(price, code any) (float64, error) {
	amount, ok := rules.AsNumber(price)
	if !ok {
		c.logger.Debug().Interface("price", price).Msg("price is not numeric")
		return 0, model.ErrInvalidPrice
	}
	if amount < 0 {
		c.logger.Debug().Float64("price", amount).Msg("price is negative")
		return 0, model.ErrNegativePrice
	}

	discountCode, ok := rules.AsString(code)
	if !ok {
		c.logger.Debug().Interface("code", code).Msg("discount code is not a string")
		return 0, model.ErrInvalidDiscountCode
	}

	coupon, found := c.table.Lookup(discountCode)
	if !found {
		c.logger.Debug().Str("code", discountCode).Msg("unknown discount code, price unchanged")
		return amount, nil
	}

	discounted, _ := decimal.NewFromFloat(amount).
		Mul(one.Sub(coupon.Discount)).
		Float64()

	c.logger.Debug().
		Str("code", discountCode).
		Float64("price", amount).
		Float64("discounted", discounted).
		Msg("discount applied")

	return discounted, nil
}

// CalculateDiscount applies code to price using the built-in coupon table.
func CalculateDiscount(price, code any) (float64, error) {
	return NewCalculator(DefaultTable(), zerolog.Nop()).CalculateDiscount(price, code)
}
