// Package checker polls the wake server and reacts to an observed wake-up.
package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/ulp-wake/internal/config"
	"github.com/oshokin/ulp-wake/internal/logger"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/service/common"
	"github.com/oshokin/ulp-wake/internal/service/hook"
)

// Options controls the checker polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between wake state checks.
	PollInterval time.Duration
	// Hook is an optional command executed once a wake-up is observed.
	Hook string
	// Debug prevents the hook from running for testing purposes.
	Debug bool
}

// DefaultPollInterval defines the fixed polling interval for wake state checks.
const DefaultPollInterval = 5 * time.Second

// errWakeObserved indicates a wake-up was observed and handled.
var errWakeObserved = errors.New("wake-up observed")

// Run polls the wake state and exits once a wake-up is observed,
// optionally running a hook command first.
// Loads configuration first to get timeout, uses default interval, and monitors wake state.
//
//nolint:cyclop // Flow is straightforward and readable; splitting would reduce clarity.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "ulp-wake-checker")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Use default polling interval as it's not user-configurable.
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Polling wake state", "server_address", serverAddress, "interval", opts.PollInterval.String())

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation or an observed wake-up.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			// Check wake state and handle an observed wake-up.
			if err = checkState(ctx, client, actor, opts); err != nil {
				if errors.Is(err, errWakeObserved) {
					logger.Info(ctx, "Wake-up handled, exiting")
					return nil
				}

				logger.ErrorKV(ctx, "Check state failed", "error", err)
			}
		}
	}
}

// checkState retrieves and processes the current wake state from the server.
// Logs wake status and timestamp, runs the hook when a wake-up is recorded
// and debug is off.
// Returns errWakeObserved when a wake-up was handled, or error on failure.
func checkState(ctx context.Context, client *common.Client, actor *pb.SystemActor, opts *Options) error {
	// Request current wake state from server.
	state, err := client.GetWakeState(ctx, actor)
	if err != nil {
		return err
	}

	// Format wake status for logging.
	status := "idle"
	if state.GetWokeThisCycle() {
		status = "woke"
	}

	// Extract timestamp with fallback to current time.
	timestamp := time.Now().Format(time.RFC3339)
	if ts := state.GetTimestamp(); ts != nil {
		timestamp = ts.AsTime().Format(time.RFC3339)
	}

	logger.Infof(ctx, "Wake state: %s at %s", status, timestamp)

	// Process the recorded wake-up.
	if !state.GetWokeThisCycle() {
		return nil
	}

	if cause := state.GetWakeCause(); cause != nil {
		logger.InfoKV(ctx, "Wake-up attributed", "type", cause.GetTypeName(), "token_id", cause.GetId())
	}

	if opts.Debug {
		logger.Info(ctx, "Wake-up observed but debug mode prevents the hook")
		return errWakeObserved
	}

	if opts.Hook == "" {
		return errWakeObserved
	}

	logger.InfoKV(ctx, "Wake-up observed, running hook", "command", opts.Hook)

	// Run the configured hook command.
	if err = hook.Run(ctx, opts.Hook); err != nil {
		return err
	}

	return errWakeObserved
}
