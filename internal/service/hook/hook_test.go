package hook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_EmptyCommand rejects blank command lines.
func TestRun_EmptyCommand(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Run(context.Background(), ""), ErrEmptyCommand)
	require.ErrorIs(t, Run(context.Background(), "   "), ErrEmptyCommand)
}

// TestRun_StartsCommand starts a harmless command through the platform shell.
func TestRun_StartsCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, Run(context.Background(), "true"))
}
