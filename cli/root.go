package cli

import (
	"context"
	"time"

	"labreserve/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	errorColor   = color.New(color.FgRed)
	headingColor = color.New(color.FgBlue, color.Bold)
)

// options are the persistent flags shared by every command.
type options struct {
	jsonOutput bool
	storeURL   string
	timeout    time.Duration
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "labreserve",
		Version: version,
		Short:   "Reserve lab equipment",
		Long: `labreserve books lab equipment against the shared reservation store.

It loads the existing reservations, refuses requests that overlap an existing
booking of the same equipment, and appends accepted requests to the store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			if !cmd.Flags().Changed("store-url") {
				opts.storeURL = config.AppConfig.StoreURL
			}
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = config.AppConfig.StoreTimeout
			}
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.storeURL, "store-url", "", "Reservation store base URL (default from STORE_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout for store calls, 0 disables (default from STORE_TIMEOUT)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newReserveCmd(opts),
		newEquipmentCmd(opts),
		newServeCmd(),
	)
	return rootCmd
}

// Execute runs the CLI until completion or until ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
