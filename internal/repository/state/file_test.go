package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/ulp-wake/internal/domain/wake"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))
	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal state.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(file)

	ts := time.Now().UTC().Truncate(time.Second)
	want := &wake.State{
		Timestamp: ts,
		LastActor: &wake.Actor{
			Hostname: "bench-01",
			Username: "o.shokin",
		},
		WokeThisCycle: true,
		Cause: &wake.TokenRef{
			ID:        "01J0000000000000000000TEST",
			TypeName:  wake.ULPAlarmTypeName,
			CreatedAt: ts.Add(-time.Minute),
		},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.WokeThisCycle, got.WokeThisCycle)
	require.Equal(t, want.Timestamp.Unix(), got.Timestamp.Unix())
	require.Equal(t, want.LastActor, got.LastActor)
	require.NotNil(t, got.Cause)
	require.Equal(t, want.Cause.ID, got.Cause.ID)
	require.Equal(t, want.Cause.TypeName, got.Cause.TypeName)
	require.Equal(t, want.Cause.CreatedAt.Unix(), got.Cause.CreatedAt.Unix())

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_SaveWithoutCause persists a reset state with no recorded cause.
func TestFileRepository_SaveWithoutCause(t *testing.T) {
	t.Parallel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "state.json"))

	want := &wake.State{
		Timestamp: time.Now(),
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.False(t, got.WokeThisCycle)
	require.Nil(t, got.Cause)
	require.Nil(t, got.LastActor)
}
