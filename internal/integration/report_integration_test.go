package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/service/client"
	"github.com/oshokin/ulp-wake/internal/service/common"
)

// TestClient_ReportAndReset pushes a wake-up and a reset through the real client flow.
func TestClient_ReportAndReset(t *testing.T) {
	t.Parallel()

	// Setup test environment with server and temporary state.
	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	// Create temporary config file for the client commands.
	cfgPath := filepath.Join(t.TempDir(), "client-settings.yaml")
	err := config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The server has no token yet, CreateMissing constructs one on the fly.
	err = client.Run(ctx, &client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: addr,
		TypeName:      domain.ULPAlarmTypeName,
		CreateMissing: true,
	})
	require.NoError(t, err)

	// Verify the wake-up is visible to a plain client.
	c, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	actor := &pb.SystemActor{
		Hostname: "test-host",
		Username: "test-user",
	}

	state, err := c.GetWakeState(ctx, actor)
	require.NoError(t, err)
	require.True(t, state.GetWokeThisCycle())
	require.Equal(t, domain.ULPAlarmTypeName, state.GetWakeCause().GetTypeName())

	// The reset flow clears the cycle.
	err = client.Run(ctx, &client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: addr,
		Reset:         true,
	})
	require.NoError(t, err)

	state, err = c.GetWakeState(ctx, actor)
	require.NoError(t, err)
	require.False(t, state.GetWokeThisCycle())
}
