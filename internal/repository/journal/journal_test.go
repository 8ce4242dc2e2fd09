package journal

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ulp-wake/internal/domain/wake"
)

// TestMigrate walks the version pragma through successive script sets.
func TestMigrate(t *testing.T) {
	t.Parallel()

	conn, err := sqlite.OpenConn(filepath.Join(t.TempDir(), "journal.db"), 0)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, conn.Close())
	})

	// Empty filesystems don't trigger migration.
	fsys := make(fstest.MapFS, 3)
	require.NoError(t, Migrate(conn, fsys))
	assertVersion(t, conn, 0)

	// First script triggers migration.
	fsys["0000.sql"] = &fstest.MapFile{
		Data: []byte("create table t1 (a text);"),
	}
	require.NoError(t, Migrate(conn, fsys))
	assertVersion(t, conn, 1)

	// Second script also triggers migration.
	fsys["0001.sql"] = &fstest.MapFile{
		Data: []byte("create table t2 (a text);"),
	}
	require.NoError(t, Migrate(conn, fsys))
	assertVersion(t, conn, 2)

	// Non-SQL files don't trigger migration.
	fsys["0002.txt"] = &fstest.MapFile{
		Data: []byte("create table t3 (a text);"),
	}
	require.NoError(t, Migrate(conn, fsys))
	assertVersion(t, conn, 2)
}

// TestMigrate_EmbeddedScripts applies the shipped schema.
func TestMigrate_EmbeddedScripts(t *testing.T) {
	t.Parallel()

	conn, err := sqlite.OpenConn(filepath.Join(t.TempDir(), "journal.db"), 0)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, conn.Close())
	})

	fsys, err := scripts()
	require.NoError(t, err)
	require.NoError(t, Migrate(conn, fsys))
}

// TestJournal_AppendRecent ensures appended events come back newest first.
func TestJournal_AppendRecent(t *testing.T) {
	t.Parallel()

	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, j.Close())
	})

	ctx := context.Background()
	actor := wake.Actor{
		Hostname: "bench-01",
		Username: "o.shokin",
	}

	base := time.Now().Truncate(time.Microsecond)

	require.NoError(t, j.Append(ctx, &Event{
		At:       base,
		Kind:     KindWake,
		TypeName: wake.ULPAlarmTypeName,
		TokenID:  "01J0000000000000000000TEST",
		Actor:    actor,
	}))
	require.NoError(t, j.Append(ctx, &Event{
		At:    base.Add(time.Second),
		Kind:  KindReset,
		Actor: actor,
	}))

	events, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, KindReset, events[0].Kind)
	require.Equal(t, KindWake, events[1].Kind)
	require.Equal(t, wake.ULPAlarmTypeName, events[1].TypeName)
	require.Equal(t, "01J0000000000000000000TEST", events[1].TokenID)
	require.Equal(t, actor, events[1].Actor)
	require.True(t, events[0].At.After(events[1].At))

	// Limit applies.
	events, err = j.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

// assertVersion reads the user_version pragma.
func assertVersion(t *testing.T, conn *sqlite.Conn, want int) {
	t.Helper()

	var got int

	require.NoError(t, sqlitex.ExecTransient(conn, "pragma user_version", func(stmt *sqlite.Stmt) error {
		got = stmt.ColumnInt(0)

		return nil
	}))
	require.Equal(t, want, got)
}
