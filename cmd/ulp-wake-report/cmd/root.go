package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	client "github.com/oshokin/ulp-wake/internal/service/client"
	"github.com/oshokin/ulp-wake/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// typeName is the alarm type the wake-up is attributed to.
	typeName string
	// createMissing constructs a token first when the server has none.
	createMissing bool

	// rootCmd represents the base command for reporting a wake-up.
	rootCmd = &cobra.Command{
		Use:   "ulp-wake-report [server-address]",
		Short: "Report a wake-up to the wake server.",
		Long: `Records a wake-up on the wake server, attributed to an alarm type.

Sends the report to the server continuously until confirmation is received.
The wake-up must match a previously constructed alarm token; with
--create-missing the command constructs one first when the server has none.
Server address can be provided as argument or loaded from configuration file.

This is typically invoked by host-side glue when the co-processor raises its
wake line.`,
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
				TypeName:      typeName,
				CreateMissing: createMissing,
			})
		},
	}
)

// Execute runs the ulp-wake-report CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&typeName, "type", "t", domain.ULPAlarmTypeName, "alarm type to attribute the wake-up to")
	rootCmd.Flags().BoolVarP(&createMissing, "create-missing", "m", false, "construct a token when the server has none")
}
