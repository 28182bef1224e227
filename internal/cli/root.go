// Package cli implements the mini-rules command line.
package cli

import (
	"context"
	"fmt"
	"slices"

	"mini-rules/internal/config"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"

	app *App
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Configuration is read from the
// environment before any subcommand runs.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

// NewRootCommandWithApp creates the root command around a prebuilt App.
func NewRootCommandWithApp(app *App) *cobra.Command {
	return newRootCommand(&RootOptions{app: app})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rules",
		Short:         "Evaluate pricing, validation and store rules",
		Long:          "Applies coupon discounts, validates user input and evaluates eligibility and store policies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.app != nil {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "failed to load configuration", Err: err}
			}
			logger := config.NewLogger(cfg.Logger, cmd.ErrOrStderr())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			app, err := NewApp(ctx, cfg, logger)
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "failed to initialise", Err: err}
			}
			opts.app = app
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewCouponsCommand(opts))
	cmd.AddCommand(NewDiscountCommand(opts))
	cmd.AddCommand(NewValidateUserCommand(opts))
	cmd.AddCommand(NewCanDriveCommand(opts))
	cmd.AddCommand(NewPriceRangeCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewSignUpCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
