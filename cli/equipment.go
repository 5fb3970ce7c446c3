package cli

import (
	"fmt"

	"labreserve/models"

	"github.com/spf13/cobra"
)

func newEquipmentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "equipment",
		Short: "List reservable equipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), models.EquipmentCatalog)
			}
			for _, opt := range models.EquipmentCatalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", opt.Label, opt.Value)
			}
			return nil
		},
	}
}
