package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/service/checker"
	"github.com/oshokin/ulp-wake/internal/service/common"
)

// reservePort returns address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// TestChecker_PollsAndReturnsOnCancel runs the checker against an idle server and cancels it.
func TestChecker_PollsAndReturnsOnCancel(t *testing.T) {
	t.Parallel()

	// Setup test environment with server and temporary state.
	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	// Setup cancellable context for checker.
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Create temporary config file for checker.
	cfgPath := filepath.Join(t.TempDir(), "checker-settings.yaml")
	err := config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	})
	require.NoError(t, err)

	// Start checker against an idle server, it keeps polling until canceled.
	go func() {
		options := &checker.Options{
			ConfigPath:    cfgPath,
			ServerAddress: addr, // Override config address
			PollInterval:  50 * time.Millisecond,
			Debug:         true,
		}

		done <- checker.Run(runCtx, options)
	}()

	// Wait for checker to start polling, then cancel.
	time.Sleep(120 * time.Millisecond)
	cancel()

	// Verify checker exits cleanly on cancellation.
	err = <-done
	require.NoError(t, err)
}

// TestChecker_ExitsOnWake records a wake-up and verifies the checker exits on its own.
func TestChecker_ExitsOnWake(t *testing.T) {
	t.Parallel()

	// Setup test environment with server and temporary state.
	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	// Connect to the test server.
	c, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Record a wake-up so the checker has something to observe.
	actor := &pb.SystemActor{
		Hostname: "test-host",
		Username: "test-user",
	}

	_, err = c.CreateAlarm(ctx, actor, domain.ULPAlarmTypeName, nil)
	require.NoError(t, err)

	_, err = c.ReportWake(ctx, actor, domain.ULPAlarmTypeName)
	require.NoError(t, err)

	// Create temporary config file for checker.
	cfgPath := filepath.Join(t.TempDir(), "checker-settings.yaml")
	err = config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	})
	require.NoError(t, err)

	done := make(chan error, 1)

	// Start checker in debug mode (won't run the hook).
	go func() {
		options := &checker.Options{
			ConfigPath:    cfgPath,
			ServerAddress: addr,
			PollInterval:  50 * time.Millisecond,
			Debug:         true,
		}

		done <- checker.Run(context.Background(), options)
	}()

	// Verify checker exits on its own after observing the wake-up.
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("checker did not exit after observing the wake-up")
	}
}
