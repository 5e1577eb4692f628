package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// Draft options
type DraftOption func(*domain.BriefDraft)

func WithDueDate(d time.Time) DraftOption {
	return func(b *domain.BriefDraft) {
		b.DueDate = &d
	}
}

func WithLeads(ids ...string) DraftOption {
	return func(b *domain.BriefDraft) {
		b.Leads = nil
		for _, id := range ids {
			b.AddLead(id)
		}
	}
}

func WithTemplate(id string) DraftOption {
	return func(b *domain.BriefDraft) {
		b.TemplateID = id
	}
}

func WithSummary(objective, audience, summary string) DraftOption {
	return func(b *domain.BriefDraft) {
		b.Objective = objective
		b.TargetAudience = audience
		b.Summary = summary
	}
}

func WithItem(catalogID, name string, unitPrice, quantity int) DraftOption {
	return func(b *domain.BriefDraft) {
		b.Items = append(b.Items, &domain.LineItem{
			ID:        catalogID,
			CatalogID: catalogID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
		})
	}
}

func WithCustomItem(name string, unitPrice, quantity int) DraftOption {
	return func(b *domain.BriefDraft) {
		b.Items = append(b.Items, &domain.LineItem{
			ID:        uuid.New().String(),
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
			IsCustom:  true,
		})
	}
}

// NewTestDraft builds a submittable draft: title, due date, one lead and one
// priced line item. Options override or extend from there.
func NewTestDraft(title string, opts ...DraftOption) *domain.BriefDraft {
	due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	d := domain.NewBriefDraft()
	d.Title = title
	d.DueDate = &due
	d.AddLead("lead-ana")
	d.Items = append(d.Items, &domain.LineItem{
		ID:        "video-30s",
		CatalogID: "video-30s",
		Name:      "Hero video (30s)",
		UnitPrice: 8,
		Quantity:  1,
	})
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Record options
type RecordOption func(*domain.BriefRecord)

func WithStatus(s domain.BriefStatus) RecordOption {
	return func(r *domain.BriefRecord) {
		r.Status = s
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.BriefRecord) {
		r.CreatedAt = t
	}
}

// NewTestRecord wraps a draft in a committed record the way the brief service
// does, with summary fields derived from the payload.
func NewTestRecord(draft *domain.BriefDraft, opts ...RecordOption) *domain.BriefRecord {
	quote := pricing.Compute(draft.Items)
	r := &domain.BriefRecord{
		ID:             uuid.New().String(),
		Title:          draft.Title,
		Description:    draft.Summary,
		LineItemCount:  len(draft.Items),
		TokenTotal:     quote.TokenTotal,
		HasProvisional: quote.HasProvisional,
		Status:         domain.StatusInReview,
		Payload:        draft.Clone(),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	if draft.DueDate != nil {
		r.DueDateLabel = draft.DueDate.Format("2 Jan 2006")
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
