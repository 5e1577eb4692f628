package domain

import (
	"fmt"
	"strings"
)

// IncompleteError reports a rejected submit attempt along with the required
// fields still blank, so the caller can show field-level guidance instead of
// a blanket failure.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("brief is incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// NewIncompleteError builds an IncompleteError for the draft, or nil when the
// draft is complete.
func NewIncompleteError(d *BriefDraft) *IncompleteError {
	missing := d.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	return &IncompleteError{Missing: missing}
}
