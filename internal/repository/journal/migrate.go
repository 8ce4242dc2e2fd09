package journal

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
)

//go:embed migrations
var migrationsFS embed.FS

// scripts returns the embedded migration scripts rooted at their directory.
func scripts() (fs.FS, error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("embedded migrations: %w", err)
	}

	return sub, nil
}

// Migrate applies the pending SQL scripts from fsys inside a savepoint.
// The current schema version is tracked with the user_version pragma: the
// first len(scripts) scripts are considered applied.
func Migrate(conn *sqlite.Conn, fsys fs.FS) (err error) {
	release := sqlitex.Save(conn)
	defer release(&err)

	var oldVersion int
	if err = sqlitex.ExecTransient(conn, "pragma user_version", func(stmt *sqlite.Stmt) error {
		oldVersion = stmt.ColumnInt(0)

		return nil
	}); err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list scripts: %w", err)
	}

	currentVersion := len(names)
	if oldVersion >= currentVersion {
		// Nothing to run.
		return nil
	}

	sort.Strings(names)

	for _, name := range names[oldVersion:] {
		if err = runScript(conn, fsys, name); err != nil {
			return err
		}
	}

	if err = sqlitex.Exec(conn, "pragma user_version="+strconv.Itoa(currentVersion), nil); err != nil {
		return fmt.Errorf("set version: %w", err)
	}

	return nil
}

// runScript executes every statement of one migration script in order.
func runScript(conn *sqlite.Conn, fsys fs.FS, name string) error {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	queries := string(buf)
	for i := 0; queries != ""; i++ {
		stmt, trailingBytes, err := conn.PrepareTransient(queries)
		if err != nil {
			return fmt.Errorf("prepare %s, stmt %d: %w", name, i, err)
		}

		usedBytes := len(queries) - trailingBytes
		queries = queries[usedBytes:]

		_, err = stmt.Step()

		stmt.Finalize()

		if err != nil {
			return fmt.Errorf("execute %s, stmt %d: %w", name, i, err)
		}

		queries = strings.TrimSpace(queries)
	}

	return nil
}
