package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type couponView struct {
	Code     string `json:"code"`
	Discount string `json:"discount"`
}

// NewCouponsCommand lists the loaded coupon table.
func NewCouponsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coupons",
		Short: "List the loaded coupon codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coupons := opts.app.Coupons.Coupons()

			views := make([]couponView, 0, len(coupons))
			var text strings.Builder
			for i, c := range coupons {
				views = append(views, couponView{Code: c.Code, Discount: c.Discount.String()})
				if i > 0 {
					text.WriteString("\n")
				}
				fmt.Fprintf(&text, "%s\t%s", c.Code, c.Discount.String())
			}

			return opts.formatter(cmd).Success(text.String(), views)
		},
	}
}

// NewDiscountCommand applies a coupon code to a price.
func NewDiscountCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "discount <price> <code>",
		Short: "Apply a discount code to a price",
		Long: `Apply a discount code to a price.

Arguments are read as JSON literals when possible, so 10 is a number and
"10" (quoted for the shell) is a string. Unknown codes leave the price unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			amount, err := opts.app.Calculator.CalculateDiscount(parseArg(args[0]), parseArg(args[1]))
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(
				strconv.FormatFloat(amount, 'f', -1, 64),
				map[string]float64{"price": amount},
			)
		},
	}
}
