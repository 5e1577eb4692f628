package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemoryCreatesSchema(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var name string
	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'briefs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "briefs", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestOpenDB_RejectsInvalidStatus(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(
		`INSERT INTO briefs (id, title, status, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		"b1", "T", "shipped", "{}", "2026-09-01T00:00:00Z",
	)
	assert.Error(t, err)
}
