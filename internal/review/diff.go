package review

import (
	"time"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// FieldDiff marks one draft field for the review screen. Changed is only ever
// true when an original snapshot exists and the values differ.
type FieldDiff struct {
	Name    string
	Changed bool
}

// LineItemDiff partitions the draft's line items against the snapshot.
// Removed holds the original's items, everything else holds the draft's.
type LineItemDiff struct {
	Unchanged []*domain.LineItem
	Modified  []*domain.LineItem
	Added     []*domain.LineItem
	Removed   []*domain.LineItem
}

// Summary is the presentation data for the pre-submit review screen. Built
// fresh on entry; never mutated, never stored.
type Summary struct {
	Draft           *domain.BriefDraft
	Quote           pricing.Quote
	Fields          []FieldDiff
	Items           LineItemDiff
	IsChangeRequest bool
}

// BuildSummary assembles the review screen's data. A nil original means a
// first-time submission: every field reads unchanged and every item reads
// as already present.
func BuildSummary(draft, original *domain.BriefDraft) Summary {
	return Summary{
		Draft:           draft,
		Quote:           pricing.Compute(draft.Items),
		Fields:          DiffFields(draft, original),
		Items:           DiffLineItems(draft.Items, originalItems(original)),
		IsChangeRequest: original != nil,
	}
}

// DiffFields compares every reviewable field against the snapshot. Scalar
// fields compare by value; multi-select fields compare as sets, so selection
// order never reads as a change.
func DiffFields(current, original *domain.BriefDraft) []FieldDiff {
	same := func(eq func(*domain.BriefDraft) bool) bool {
		if original == nil {
			return true
		}
		return eq(original)
	}

	return []FieldDiff{
		{"Project title", !same(func(o *domain.BriefDraft) bool { return current.Title == o.Title })},
		{"Due date", !same(func(o *domain.BriefDraft) bool { return sameDate(current.DueDate, o.DueDate) })},
		{"Project leads", !same(func(o *domain.BriefDraft) bool { return sameSet(current.Leads, o.Leads) })},
		{"Under NDA", !same(func(o *domain.BriefDraft) bool { return current.UnderNDA == o.UnderNDA })},
		{"Objective", !same(func(o *domain.BriefDraft) bool { return current.Objective == o.Objective })},
		{"Target audience", !same(func(o *domain.BriefDraft) bool { return current.TargetAudience == o.TargetAudience })},
		{"Brief summary", !same(func(o *domain.BriefDraft) bool { return current.Summary == o.Summary })},
		{"Work types", !same(func(o *domain.BriefDraft) bool { return sameSet(current.WorkTypes, o.WorkTypes) })},
		{"Channels", !same(func(o *domain.BriefDraft) bool { return sameSet(current.Channels, o.Channels) })},
		{"Expected outputs", !same(func(o *domain.BriefDraft) bool { return sameSet(current.Outputs, o.Outputs) })},
		{"Template", !same(func(o *domain.BriefDraft) bool { return current.TemplateID == o.TemplateID })},
		{"Watermark all files", !same(func(o *domain.BriefDraft) bool { return current.WatermarkAllFiles == o.WatermarkAllFiles })},
	}
}

// DiffLineItems partitions line items by id. An item counts as modified when
// quantity, specification, or delivery week differ from its counterpart.
func DiffLineItems(current, original []*domain.LineItem) LineItemDiff {
	var d LineItemDiff

	byID := make(map[string]*domain.LineItem, len(original))
	for _, li := range original {
		byID[li.ID] = li
	}

	seen := make(map[string]bool, len(current))
	for _, li := range current {
		seen[li.ID] = true
		prev, ok := byID[li.ID]
		switch {
		case !ok:
			d.Added = append(d.Added, li)
		case li.SameContent(prev):
			d.Unchanged = append(d.Unchanged, li)
		default:
			d.Modified = append(d.Modified, li)
		}
	}

	for _, li := range original {
		if !seen[li.ID] {
			d.Removed = append(d.Removed, li)
		}
	}
	return d
}

func originalItems(original *domain.BriefDraft) []*domain.LineItem {
	if original == nil {
		return nil
	}
	return original.Items
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	members := make(map[string]bool, len(a))
	for _, v := range a {
		members[v] = true
	}
	for _, v := range b {
		if !members[v] {
			return false
		}
	}
	return true
}
