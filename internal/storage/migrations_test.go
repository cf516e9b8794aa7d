package storage

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrationRunner_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	runner := NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	// collections table exists and accepts writes.
	_, err := db.Exec(`INSERT INTO collections (key, value) VALUES ('x', '{}')`)
	assert.NoError(t, err)

	// Migration is recorded.
	var count int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = 1",
	).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrationRunner_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, NewMigrationRunner(db).Run())
	require.NoError(t, NewMigrationRunner(db).Run())

	var count int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations",
	).Scan(&count))
	assert.Equal(t, 1, count, "re-running must not re-apply migrations")
}

func TestMigrationRunner_UpsertReplacesValue(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewMigrationRunner(db).Run())

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.setValue.Exec("theme", `"dark"`)
	require.NoError(t, err)
	_, err = store.setValue.Exec("theme", `"light"`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(
		"SELECT value FROM collections WHERE key = 'theme'",
	).Scan(&value))
	assert.Equal(t, `"light"`, value)

	var rows int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM collections",
	).Scan(&rows))
	assert.Equal(t, 1, rows)
}
