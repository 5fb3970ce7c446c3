package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show existing reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newController(cmd.Context(), opts)
			defer c.Close()

			if err := c.Load(cmd.Context()); err != nil {
				return fmt.Errorf("could not load reservations: %w", err)
			}

			s := c.Snapshot()
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), s.Reservations)
			}
			return printReservations(cmd.OutOrStdout(), s)
		},
	}
}
