package wake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/ulp-wake/internal/hal/espulp"
)

// TestNewULPAlarm_Basics checks construction yields a typed, inert, unique token.
func TestNewULPAlarm_Basics(t *testing.T) {
	a := NewULPAlarm()

	require.NotNil(t, a)
	require.Equal(t, ULPAlarmTypeName, a.Type().Name)
	require.NotEmpty(t, a.ID())
	require.False(t, a.Armed())
	require.False(t, a.CreatedAt().IsZero())
}

// TestNewULPAlarm_DistinctInstances ensures two constructions never alias.
func TestNewULPAlarm_DistinctInstances(t *testing.T) {
	first := NewULPAlarm()
	second := NewULPAlarm()

	require.NotSame(t, first, second)
	require.NotEqual(t, first.ID(), second.ID())
}

// TestNewULPAlarm_DelegatesOnce verifies construction performs exactly one
// call to the hardware-abstraction construct routine.
func TestNewULPAlarm_DelegatesOnce(t *testing.T) {
	original := constructULP

	t.Cleanup(func() {
		constructULP = original
	})

	var calls int

	constructULP = func(s *espulp.AlarmState) {
		calls++

		espulp.ConstructAlarm(s)
	}

	a := NewULPAlarm()

	require.NotNil(t, a)
	require.Equal(t, 1, calls)
	require.False(t, a.Armed())
}
