package cli

import (
	"fmt"
	"time"

	"mini-rules/internal/capability"
	"mini-rules/internal/policy"

	"github.com/spf13/cobra"
)

type storeView struct {
	At       time.Time `json:"at"`
	State    string    `json:"state"`
	Online   bool      `json:"online"`
	Discount float64   `json:"discount"`
}

// NewStoreCommand reports the store state and seasonal discount.
func NewStoreCommand(opts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Show whether the store is open and today's seasonal discount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := opts.app.Clock
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return &ExitError{Code: ExitCommandError, Message: "invalid --at time", Err: err}
				}
				clock = capability.NewFixedClock(t)
			}

			p, err := policy.New(clock, opts.app.Hours, opts.app.Seasonal, opts.app.Logger)
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "invalid store policy", Err: err}
			}

			state := p.State()
			view := storeView{
				At:       clock.Now(),
				State:    state.String(),
				Online:   state == policy.StateOpen,
				Discount: p.Discount(),
			}

			text := fmt.Sprintf("store is %s, discount %v", view.State, view.Discount)
			return opts.formatter(cmd).Success(text, view)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate at this RFC3339 time instead of now")

	return cmd
}
