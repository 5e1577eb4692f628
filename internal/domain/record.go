package domain

import "time"

// BriefRecord is the immutable artifact a submitted draft becomes: the list
// entry handed to the brief list, plus the full field set needed to seed a
// later duplication or change-request session.
type BriefRecord struct {
	ID          string
	Title       string
	Description string

	TemplateBadge string // template display name, empty for template-less briefs
	DueDateLabel  string
	LineItemCount int

	TokenTotal     int
	HasProvisional bool

	Status BriefStatus

	// Payload is the committed draft, retained so "duplicate" and
	// "change request" can rebuild a working draft later.
	Payload *BriefDraft

	CreatedAt time.Time
}

// DisplayID returns the first 8 characters of the record id for display.
func (r *BriefRecord) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
