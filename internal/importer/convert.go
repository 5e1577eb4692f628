package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// Convert transforms a validated DraftFile into a working draft, resolving
// template, lead and catalog references against the loaded catalog. Call
// ValidateDraftFile first; Convert assumes the file is structurally valid.
func Convert(file *DraftFile, cat *catalog.Catalog, cfg pricing.Config) (*domain.BriefDraft, error) {
	draft := domain.NewBriefDraft()
	draft.Title = strings.TrimSpace(file.Brief.Title)
	draft.UnderNDA = file.Brief.UnderNDA
	draft.Objective = file.Brief.Objective
	draft.TargetAudience = file.Brief.TargetAudience
	draft.Summary = file.Brief.Summary
	draft.SetWorkTypes(file.Brief.WorkTypes)
	draft.SetChannels(file.Brief.Channels)
	draft.SetOutputs(file.Brief.Outputs)

	if file.Brief.DueDate != nil && *file.Brief.DueDate != "" {
		due, err := time.Parse("2006-01-02", *file.Brief.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parsing due_date: %w", err)
		}
		draft.DueDate = &due
	}

	known := make(map[string]bool)
	for _, l := range cat.Leads() {
		known[l.ID] = true
	}
	for _, leadID := range file.Brief.Leads {
		if !known[leadID] {
			return nil, fmt.Errorf("unknown lead %q", leadID)
		}
		draft.AddLead(leadID)
	}

	if file.Brief.Template != "" {
		if _, ok := cat.TemplateByID(file.Brief.Template); !ok {
			return nil, fmt.Errorf("unknown template %q", file.Brief.Template)
		}
		draft.TemplateID = file.Brief.Template
	}

	for _, d := range file.Deliverables {
		qty := d.Quantity
		if qty == 0 {
			qty = 1
		}

		if d.CatalogID == "" {
			draft.Items = append(draft.Items, &domain.LineItem{
				ID:            uuid.New().String(),
				Name:          strings.TrimSpace(d.Name),
				Description:   d.Description,
				UnitPrice:     cfg.CustomPlaceholder,
				Quantity:      qty,
				Specification: d.Specification,
				DeliveryWeek:  d.DeliveryWeek,
				IsCustom:      true,
			})
			continue
		}

		asset, ok := cat.Lookup(d.CatalogID)
		if !ok {
			return nil, fmt.Errorf("unknown catalog deliverable %q", d.CatalogID)
		}
		if asset.Toggle && qty > 1 {
			qty = 1
		}
		price, _ := cat.PriceFor(d.CatalogID, draft.TemplateID)
		draft.Items = append(draft.Items, &domain.LineItem{
			ID:            d.CatalogID,
			CatalogID:     d.CatalogID,
			Name:          asset.Name,
			Description:   asset.Description,
			UnitPrice:     price,
			Quantity:      qty,
			Specification: d.Specification,
			DeliveryWeek:  d.DeliveryWeek,
		})
	}

	if toggle, ok := cat.ToggleAsset(); ok {
		draft.WatermarkAllFiles = draft.ItemByID(toggle.ID) != nil
	}

	for _, a := range file.Attachments {
		draft.AttachFile(strings.TrimSpace(a.Name), a.SizeBytes)
	}

	return draft, nil
}
