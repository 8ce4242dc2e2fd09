package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/oshokin/ulp-wake/internal/api/grpc/wake"
	"github.com/oshokin/ulp-wake/internal/config"
	"github.com/oshokin/ulp-wake/internal/logger"
	"github.com/oshokin/ulp-wake/internal/metrics"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/repository/journal"
	repository "github.com/oshokin/ulp-wake/internal/repository/state"
	"github.com/oshokin/ulp-wake/internal/service/singleton"
)

// Options controls the ulp-wake-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateFile specifies the path to persist wake state JSON.
	StateFile string
	// JournalFile specifies the path to the wake-event journal database.
	JournalFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Loads configuration first, then determines listen address from config or override.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "ulp-wake-server")

	// Only one supervisor may own the recorded wake state on this machine.
	if err := singleton.Guard(); err != nil {
		return fmt.Errorf("startup check: %w", err)
	}

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Use StateFile from config unless overridden by command line option.
	stateFile := settings.StateFile
	if opts.StateFile != "" {
		stateFile = opts.StateFile
	}

	journalFile := settings.JournalFile
	if opts.JournalFile != "" {
		journalFile = opts.JournalFile
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Initialize state repository for wake persistence.
	repo := repository.NewFileRepository(stateFile)

	// The journal is optional, a missing path disables event history.
	var recorder journal.Recorder

	if journalFile != "" {
		sqliteJournal, journalErr := journal.Open(journalFile)
		if journalErr != nil {
			return fmt.Errorf("open journal: %w", journalErr)
		}

		defer func() {
			if closeErr := sqliteJournal.Close(); closeErr != nil {
				logger.Errorf(ctx, "Failed to close journal: %v", closeErr)
			}
		}()

		recorder = sqliteJournal
	}

	counters := metrics.New()

	// Create wake service with state management.
	svc, err := newService(ctx, repo, recorder, counters)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with wake service.
	grpcServer := grpc.NewServer()
	pb.RegisterWakeServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Wake server listening",
		"listen_address", listenAddress,
		"state_file", stateFile,
		"journal_file", journalFile)

	// The metrics endpoint runs on its own listener when configured.
	if settings.MetricsAddress != "" {
		go func() {
			logger.InfoKV(ctx, "Metrics endpoint listening", "metrics_address", settings.MetricsAddress)

			if metricsErr := counters.Serve(ctx, settings.MetricsAddress); metricsErr != nil {
				logger.Errorf(ctx, "Metrics endpoint failed: %v", metricsErr)
			}
		}()
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
