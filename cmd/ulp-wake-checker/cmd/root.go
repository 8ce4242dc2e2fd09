package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ulp-wake/internal/config"
	"github.com/oshokin/ulp-wake/internal/service/checker"
	"github.com/oshokin/ulp-wake/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// hookCommand is the command executed when a wake-up is observed.
	hookCommand string
	// debug controls whether to skip the hook when a wake-up is observed.
	debug bool

	// rootCmd represents the base command for polling wake state.
	rootCmd = &cobra.Command{
		Use:   "ulp-wake-checker [server-address]",
		Short: "Monitor wake state and react when a wake-up is recorded.",
		Long: `Background service that monitors wake state and reacts to a recorded wake-up.

Continuously polls the server at fixed 5-second intervals to check wake status.
When a wake-up is recorded (reported by any source), runs the configured hook
command and exits.
Uses timeout and server settings from configuration file, polling interval is fixed.
Server address can be provided as argument or loaded from configuration file.

This runs as a background service to react when the co-processor wakes the host.`,
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

			// Create checker options with server address override and hook command.
			checkerOptions := &checker.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Hook:          hookCommand,
				Debug:         debug,
			}

			return checker.Run(ctx, checkerOptions)
		},
	}
)

// Execute runs the ulp-wake-checker CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&hookCommand, "hook", "k", "", "command to run when a wake-up is observed")

	// Hidden debug flag to skip the hook for debugging.
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "skip the hook for debugging")

	err := rootCmd.Flags().MarkHidden("debug")
	if err != nil {
		panic(err)
	}
}
