package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	"github.com/oshokin/ulp-wake/internal/logger"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/service/common"
)

// Options configures the wake client for report and reset operations.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// TypeName is the alarm type the wake-up is attributed to.
	TypeName string

	// Reset clears the wake cycle instead of reporting a wake-up.
	Reset bool

	// CreateMissing constructs a token first when the server has none of
	// the requested type.
	CreateMissing bool
}

// DefaultPushInterval defines retry delay when pushing wake state to server.
const defaultPushInterval = 1 * time.Second

// Run attempts to report or reset the wake state with retry logic until
// success or cancellation.
//
//nolint:cyclop,funlen // Complex business logic requires multiple conditional paths.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "ulp-wake-report/reset")

	if opts.TypeName == "" {
		opts.TypeName = domain.ULPAlarmTypeName
	}

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	// Connect to wake server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(
		ctx,
		"Pushing wake update",
		"server_address",
		serverAddress,
		"type",
		opts.TypeName,
		"reset",
		opts.Reset,
	)

	// attempt tries once to push the update, returns (completed, error).
	attempt := func() (bool, error) {
		resp, attemptErr := push(ctx, client, actor, opts)
		if attemptErr != nil {
			// Unknown alarm types never succeed, stop immediately.
			if status.Code(attemptErr) == codes.NotFound {
				return false, attemptErr
			}

			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "Wake update failed", "error", attemptErr)

			return false, nil
		}

		// Check if server confirmed the desired wake state.
		if resp != nil && resp.GetWokeThisCycle() != opts.Reset {
			logger.Infof(ctx, "Wake state updated: %s", formatState(resp))

			return true, nil
		}

		// Server responded but state mismatch, continue retrying.
		return false, nil
	}

	// Attempt immediately before starting retry loop.
	if done, err := attempt(); err != nil {
		return err
	} else if done {
		return nil
	}

	// Setup retry timer for subsequent attempts.
	ticker := time.NewTicker(defaultPushInterval)
	defer ticker.Stop()

	// Retry loop until success or cancellation.
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := attempt()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// push performs one report or reset call, constructing a missing token first
// when the server rejects the wake-up as unattributable.
func push(ctx context.Context, client *common.Client, actor *pb.SystemActor, opts *Options) (*pb.WakeStateResponse, error) {
	if opts.Reset {
		return client.ResetWakeCycle(ctx, actor)
	}

	resp, err := client.ReportWake(ctx, actor, opts.TypeName)
	if err == nil || status.Code(err) != codes.FailedPrecondition || !opts.CreateMissing {
		return resp, err
	}

	logger.InfoKV(ctx, "No token of requested type on server, constructing one", "type", opts.TypeName)

	if _, createErr := client.CreateAlarm(ctx, actor, opts.TypeName, nil); createErr != nil {
		return nil, createErr
	}

	return client.ReportWake(ctx, actor, opts.TypeName)
}

// formatState converts a wake state response to readable log message.
func formatState(state *pb.WakeStateResponse) string {
	if state == nil {
		return "<nil state>"
	}

	// Extract timestamp with fallback for missing data.
	timestamp := "<unknown>"
	if t := state.GetTimestamp(); t != nil {
		timestamp = t.AsTime().Format(time.RFC3339)
	}

	// Format actor as username@hostname with fallback.
	actor := "<unknown>"
	if state.GetLastActor() != nil {
		actor = fmt.Sprintf("%s@%s", state.GetLastActor().GetUsername(), state.GetLastActor().GetHostname())
	}

	// Describe the wake cycle with its cause when present.
	status := "idle"
	if state.GetWokeThisCycle() {
		status = "woke"

		if cause := state.GetWakeCause(); cause != nil {
			status = fmt.Sprintf("woke via %s (%s)", cause.GetTypeName(), cause.GetId())
		}
	}

	return fmt.Sprintf("%s by %s (%s)", status, actor, timestamp)
}
