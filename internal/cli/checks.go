package cli

import (
	"strconv"

	"mini-rules/internal/rules"

	"github.com/spf13/cobra"
)

type validationView struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages,omitempty"`
}

// NewValidateUserCommand validates a username and age pair.
func NewValidateUserCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-user <username> <age>",
		Short: "Validate a username and age",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			result := rules.ValidateUserInput(parseArg(args[0]), parseArg(args[1]))
			if !result.OK() {
				return f.Fail(result.Err(), result.Messages()...)
			}

			return f.Success(result.String(), validationView{Valid: true})
		},
	}
}

// NewCanDriveCommand checks a driver's age against the eligibility table.
func NewCanDriveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "can-drive <age> <country>",
		Short: "Check whether a person may drive in a jurisdiction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			age, err := parseInt("age", args[0])
			if err != nil {
				return err
			}

			allowed, err := opts.app.Eligibility.CanDrive(age, args[1])
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(strconv.FormatBool(allowed), map[string]bool{"allowed": allowed})
		},
	}
}

// NewPriceRangeCommand checks whether a price lies in an inclusive range.
func NewPriceRangeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "price-range <price> <min> <max>",
		Short: "Check whether a price lies within [min, max]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"price", "min", "max"}
			values := make([]float64, len(args))
			for i, raw := range args {
				v, err := parseFloat(names[i], raw)
				if err != nil {
					return err
				}
				values[i] = v
			}

			inRange := rules.IsPriceInRange(values[0], values[1], values[2])
			return opts.formatter(cmd).Success(strconv.FormatBool(inRange), map[string]bool{"in_range": inRange})
		},
	}
}
