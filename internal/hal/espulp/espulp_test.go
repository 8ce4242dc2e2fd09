package espulp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConstructAlarm verifies construction resets the state to the unarmed baseline.
func TestConstructAlarm(t *testing.T) {
	t.Parallel()

	s := AlarmState{armed: true}

	ConstructAlarm(&s)

	require.False(t, s.Armed())
}
