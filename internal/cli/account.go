package cli

import (
	"fmt"

	"mini-rules/internal/model"

	"github.com/spf13/cobra"
)

// NewSignUpCommand signs up an email address and sends the welcome message.
func NewSignUpCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <email>",
		Short: "Sign up an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			ok, err := opts.app.Accounts.SignUp(cmd.Context(), args[0])
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "sign-up failed", Err: err}
			}
			if !ok {
				return f.Fail(model.ErrInvalidEmail)
			}

			return f.Success(fmt.Sprintf("welcome message sent to %s", args[0]), map[string]bool{"signed_up": true})
		},
	}
}

// NewLoginCommand sends a one-time login code.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Send a one-time login code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Accounts.Login(cmd.Context(), args[0]); err != nil {
				return &ExitError{Code: ExitCommandError, Message: "login failed", Err: err}
			}

			return opts.formatter(cmd).Success(fmt.Sprintf("login code sent to %s", args[0]), map[string]bool{"sent": true})
		},
	}
}
