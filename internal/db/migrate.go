package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS briefs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		template_badge TEXT NOT NULL DEFAULT '',
		due_date_label TEXT NOT NULL DEFAULT '',
		line_item_count INTEGER NOT NULL DEFAULT 0,
		token_total INTEGER NOT NULL DEFAULT 0,
		has_provisional INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft'
			CHECK (status IN ('draft', 'in_review', 'scoped', 'signed')),
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_briefs_created_at ON briefs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_briefs_status ON briefs(status)`,
}
