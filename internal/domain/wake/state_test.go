package wake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestStateClone verifies deep copies do not alias the original references.
func TestStateClone(t *testing.T) {
	t.Parallel()

	original := &State{
		Timestamp: time.Unix(100, 0),
		LastActor: &Actor{
			Hostname: "bench-01",
			Username: "o.shokin",
		},
		WokeThisCycle: true,
		Cause: &TokenRef{
			ID:        "01J0000000000000000000TEST",
			TypeName:  ULPAlarmTypeName,
			CreatedAt: time.Unix(90, 0),
		},
	}

	cloned := original.Clone()

	require.Equal(t, original, cloned)
	require.NotSame(t, original.LastActor, cloned.LastActor)
	require.NotSame(t, original.Cause, cloned.Cause)
}

// TestStateClone_NilReferences ensures nil actor and cause survive cloning.
func TestStateClone_NilReferences(t *testing.T) {
	t.Parallel()

	original := &State{
		Timestamp: time.Unix(100, 0),
	}

	cloned := original.Clone()

	require.Nil(t, cloned.LastActor)
	require.Nil(t, cloned.Cause)
	require.False(t, cloned.WokeThisCycle)
}
