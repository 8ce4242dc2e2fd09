package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ulp-wake/internal/config"
	"github.com/oshokin/ulp-wake/internal/service/server"
	"github.com/oshokin/ulp-wake/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where wake state is persisted.
	stateFile string
	// journalFile path where the wake-event journal is stored.
	journalFile string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "ulp-wake-server [listen-address]",
		Short: "Run the wake supervisor gRPC server and manage wake state.",
		Long: `Starts the gRPC wake server that tracks alarm tokens and recorded wake-ups.

The server listens on the specified address or uses settings from configuration file.
Only the port from ServerAddress config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Wake state is persisted to JSON file for recovery across restarts, and every token
construction, wake-up and reset is appended to a SQLite journal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateFile:     stateFile,
				JournalFile:   journalFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the ulp-wake-server CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", config.DefaultStateFilename, "path to persist wake state")
	rootCmd.Flags().
		StringVarP(&journalFile, "journal-file", "j", config.DefaultJournalFilename, "path to the wake-event journal")
}
