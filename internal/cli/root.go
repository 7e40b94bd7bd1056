// Package cli implements bookctl, the submitting side of the booking relay.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/appointment-relay/internal/config"
)

// NewRootCmd builds the bookctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Submit appointment bookings to the relay server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBookCmd())
	return root
}

// Execute runs bookctl and exits non-zero on failure.
func Execute() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
