// Package contract defines the stable JSON shapes briefdesk emits for other
// tools. Field names and semantics here are a published interface: additive
// changes bump the minor version, breaking ones bump SchemaVersion.
package contract

import (
	"time"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// SchemaVersion identifies the export format.
const SchemaVersion = "briefdesk/v1"

// BriefExport is the full representation of one committed brief.
type BriefExport struct {
	Schema    string    `json:"schema"`
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Title          string   `json:"title"`
	DueDate        string   `json:"due_date,omitempty"`
	Leads          []string `json:"leads,omitempty"`
	UnderNDA       bool     `json:"under_nda"`
	Objective      string   `json:"objective,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	WorkTypes      []string `json:"work_types,omitempty"`
	Channels       []string `json:"channels,omitempty"`
	Outputs        []string `json:"outputs,omitempty"`
	Template       string   `json:"template,omitempty"`
	WatermarkAll   bool     `json:"watermark_all_files"`

	Deliverables []DeliverableExport `json:"deliverables"`
	Attachments  []AttachmentExport  `json:"attachments,omitempty"`
	Pricing      PricingExport       `json:"pricing"`
}

// AttachmentExport is an opaque document reference.
type AttachmentExport struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// DeliverableExport is one line item. Custom lines carry no catalog_id and
// their subtotal is excluded from the priced total.
type DeliverableExport struct {
	CatalogID     string `json:"catalog_id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	UnitPrice     int    `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Specification string `json:"specification,omitempty"`
	DeliveryWeek  string `json:"delivery_week,omitempty"`
	Custom        bool   `json:"custom,omitempty"`
}

// PricingExport is the priced total and its currency conversion.
type PricingExport struct {
	TokenTotal     int     `json:"token_total"`
	HasProvisional bool    `json:"has_provisional"`
	Currency       string  `json:"currency"`
	CurrencyAmount float64 `json:"currency_amount"`
}

// ExportBrief builds the v1 export for a stored brief.
func ExportBrief(rec *domain.BriefRecord, cfg pricing.Config) *BriefExport {
	out := &BriefExport{
		Schema:    SchemaVersion,
		ID:        rec.ID,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt,
		Title:     rec.Title,
	}

	draft := rec.Payload
	if draft == nil {
		draft = domain.NewBriefDraft()
	}

	if draft.DueDate != nil {
		out.DueDate = draft.DueDate.Format("2006-01-02")
	}
	out.Leads = append([]string(nil), draft.Leads...)
	out.UnderNDA = draft.UnderNDA
	out.Objective = draft.Objective
	out.TargetAudience = draft.TargetAudience
	out.Summary = draft.Summary
	out.WorkTypes = append([]string(nil), draft.WorkTypes...)
	out.Channels = append([]string(nil), draft.Channels...)
	out.Outputs = append([]string(nil), draft.Outputs...)
	out.Template = draft.TemplateID
	out.WatermarkAll = draft.WatermarkAllFiles

	out.Deliverables = make([]DeliverableExport, 0, len(draft.Items))
	for _, li := range draft.Items {
		out.Deliverables = append(out.Deliverables, DeliverableExport{
			CatalogID:     li.CatalogID,
			Name:          li.Name,
			Description:   li.Description,
			UnitPrice:     li.UnitPrice,
			Quantity:      li.Quantity,
			Specification: li.Specification,
			DeliveryWeek:  li.DeliveryWeek,
			Custom:        li.IsCustom,
		})
	}

	for _, a := range draft.Attachments {
		out.Attachments = append(out.Attachments, AttachmentExport{Name: a.Name, SizeBytes: a.Size})
	}

	quote := pricing.Compute(draft.Items)
	out.Pricing = PricingExport{
		TokenTotal:     quote.TokenTotal,
		HasProvisional: quote.HasProvisional,
		Currency:       cfg.CurrencyCode,
		CurrencyAmount: cfg.Currency(quote.TokenTotal),
	}

	return out
}
