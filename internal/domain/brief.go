package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Attachment is an opaque reference to a supporting document. The builder
// only counts and lists attachments; it never reads their contents.
type Attachment struct {
	Name string
	Size int64
}

// BriefDraft is the full mutable record for one brief-in-progress. It lives
// only in the current authoring session and is discarded on cancel.
type BriefDraft struct {
	// Identity
	Title   string
	DueDate *time.Time
	Leads   []string // lead ids, set semantics, insertion order kept for display

	// Classification
	UnderNDA       bool
	Objective      string
	TargetAudience string
	Summary        string

	// Multi-select fields drawn from the catalog vocabularies.
	WorkTypes []string
	Channels  []string
	Outputs   []string

	// TemplateID is empty when no template is selected. "No template" is a
	// first-class state, never a sentinel template id.
	TemplateID string

	Items []*LineItem // insertion order, stable for display

	WatermarkAllFiles bool
	Attachments       []Attachment
}

// NewBriefDraft returns an empty draft ready for the template picker.
func NewBriefDraft() *BriefDraft {
	return &BriefDraft{}
}

// IsComplete reports whether the draft can be reviewed and submitted:
// a title, a due date, at least one lead, and at least one line item or a
// selected template.
func (d *BriefDraft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}

// MissingFields lists the required fields still blank, in display order.
// The review action stays visible but disabled while any remain.
func (d *BriefDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "project title")
	}
	if d.DueDate == nil {
		missing = append(missing, "due date")
	}
	if len(d.Leads) == 0 {
		missing = append(missing, "project lead")
	}
	if len(d.Items) == 0 && d.TemplateID == "" {
		missing = append(missing, "deliverables or template")
	}
	return missing
}

// TitleWarning returns a non-blocking advisory when the title matches the
// configured duplicate-title pattern (e.g. another "New Year 2027" brief).
// A nil pattern disables the check. Advisory only; never blocks submission.
func (d *BriefDraft) TitleWarning(pattern *regexp.Regexp) string {
	if pattern == nil || !pattern.MatchString(d.Title) {
		return ""
	}
	return fmt.Sprintf("a brief titled %q may already exist for this campaign", d.Title)
}

// HasLead reports whether the lead id is already selected.
func (d *BriefDraft) HasLead(id string) bool {
	for _, l := range d.Leads {
		if l == id {
			return true
		}
	}
	return false
}

// AddLead appends the lead id unless already present.
func (d *BriefDraft) AddLead(id string) {
	if id == "" || d.HasLead(id) {
		return
	}
	d.Leads = append(d.Leads, id)
}

// RemoveLead drops the lead id if present.
func (d *BriefDraft) RemoveLead(id string) {
	d.Leads = removeString(d.Leads, id)
}

// SetWorkTypes, SetChannels and SetOutputs replace the multi-select fields,
// deduplicating while keeping first-seen order.
func (d *BriefDraft) SetWorkTypes(values []string) { d.WorkTypes = dedupe(values) }
func (d *BriefDraft) SetChannels(values []string)  { d.Channels = dedupe(values) }
func (d *BriefDraft) SetOutputs(values []string)   { d.Outputs = dedupe(values) }

// ItemByID returns the line item with the given id, or nil.
func (d *BriefDraft) ItemByID(id string) *LineItem {
	for _, li := range d.Items {
		if li.ID == id {
			return li
		}
	}
	return nil
}

// AttachFile records an opaque document reference.
func (d *BriefDraft) AttachFile(name string, size int64) {
	d.Attachments = append(d.Attachments, Attachment{Name: name, Size: size})
}

// Clone returns a deep copy of the draft. Used to freeze the original
// snapshot when a change-request session starts.
func (d *BriefDraft) Clone() *BriefDraft {
	c := *d
	if d.DueDate != nil {
		due := *d.DueDate
		c.DueDate = &due
	}
	c.Leads = append([]string(nil), d.Leads...)
	c.WorkTypes = append([]string(nil), d.WorkTypes...)
	c.Channels = append([]string(nil), d.Channels...)
	c.Outputs = append([]string(nil), d.Outputs...)
	c.Attachments = append([]Attachment(nil), d.Attachments...)
	c.Items = make([]*LineItem, 0, len(d.Items))
	for _, li := range d.Items {
		c.Items = append(c.Items, li.Clone())
	}
	return &c
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func removeString(values []string, target string) []string {
	out := values[:0]
	for _, v := range values {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
