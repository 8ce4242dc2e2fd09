package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	"github.com/oshokin/ulp-wake/internal/service/token"
	"github.com/oshokin/ulp-wake/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from config.
	serverAddress string
	// typeName is the alarm type to construct a token of.
	typeName string
	// listTypes prints the registered alarm types instead of constructing.
	listTypes bool

	// rootCmd represents the base command for constructing alarm tokens.
	rootCmd = &cobra.Command{
		Use:   "ulp-wake-token [construction-args...]",
		Short: "Construct an alarm token on the wake server.",
		Long: `Constructs a new alarm token of a registered type on the wake server.

A freshly constructed token is inert; the server only uses it to attribute
later wake-ups. Positional arguments are passed to the type constructor and
are rejected when the type declares fewer arguments.
Use --list to print the registered alarm types instead.`,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return token.Run(ctx, &token.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				TypeName:      typeName,
				Args:          args,
				List:          listTypes,
			})
		},
	}
)

// Execute runs the ulp-wake-token CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "wake server address override")
	rootCmd.Flags().StringVarP(&typeName, "type", "t", domain.ULPAlarmTypeName, "alarm type to construct")
	rootCmd.Flags().BoolVarP(&listTypes, "list", "l", false, "list registered alarm types")
}
