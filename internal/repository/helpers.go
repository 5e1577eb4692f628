package repository

import "time"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time truncated to seconds, matching the
// RFC3339 precision the briefs table stores.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
