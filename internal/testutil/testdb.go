package testutil

import (
	"database/sql"
	"testing"

	"github.com/mkowalczyk/briefdesk/internal/db"
	"github.com/stretchr/testify/require"
)

// OpenTestDB opens an in-memory database with migrations applied and closes
// it when the test finishes.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}
