package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ulp-wake/internal/config"
	client "github.com/oshokin/ulp-wake/internal/service/client"
	"github.com/oshokin/ulp-wake/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string

	// rootCmd represents the base command for clearing the wake cycle.
	rootCmd = &cobra.Command{
		Use:   "ulp-wake-reset [server-address]",
		Short: "Clear the recorded wake-up for a new sleep cycle.",
		Long: `Resets the wake cycle on the wake server.

Sends the reset to the server continuously until confirmation is received.
After a reset the server reports no wake-up until the next one is recorded.
Server address can be provided as argument or loaded from configuration file.

This is typically invoked before entering the next sleep cycle.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			return client.Run(ctx, &client.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				Reset:         true,
			})
		},
	}
)

// Execute runs the ulp-wake-reset CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
