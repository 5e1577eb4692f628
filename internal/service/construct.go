package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// ProjectRecord is the minimal shape an external project tracker hands over
// when a brief session starts from one of its entries.
type ProjectRecord struct {
	Name        string
	DueDateText string
	TeamLabel   string
	OwnerLabels []string
}

// NewDraft returns an empty draft for a fresh builder session.
func NewDraft() *domain.BriefDraft {
	return domain.NewBriefDraft()
}

// DuplicateOf rebuilds a working draft from a committed brief. Identity
// fields (title, due date, leads) and the NDA flag reset to blank; everything
// else carries over, custom items and annotations included.
func DuplicateOf(rec *domain.BriefRecord) *domain.BriefDraft {
	d := payloadClone(rec)
	d.Title = ""
	d.DueDate = nil
	d.Leads = nil
	d.UnderNDA = false
	return d
}

// RevisionOf rebuilds the full draft, identity intact, for a change-request
// session.
func RevisionOf(rec *domain.BriefRecord) *domain.BriefDraft {
	return payloadClone(rec)
}

// FromProjectRecord seeds a draft from an external project entry. The
// tracker's fields don't map onto catalog deliverables, so the whole entry
// becomes one generic custom line item for the agency to price.
func FromProjectRecord(rec ProjectRecord, placeholderPrice int) *domain.BriefDraft {
	d := domain.NewBriefDraft()
	d.Title = rec.Name

	var spec []string
	if rec.TeamLabel != "" {
		spec = append(spec, "Team: "+rec.TeamLabel)
	}
	if len(rec.OwnerLabels) > 0 {
		spec = append(spec, "Owners: "+strings.Join(rec.OwnerLabels, ", "))
	}

	d.Items = []*domain.LineItem{{
		ID:            uuid.New().String(),
		Name:          fmt.Sprintf("Production support: %s", rec.Name),
		UnitPrice:     placeholderPrice,
		Quantity:      1,
		Specification: strings.Join(spec, "\n"),
		DeliveryWeek:  rec.DueDateText,
		IsCustom:      true,
	}}
	return d
}

func payloadClone(rec *domain.BriefRecord) *domain.BriefDraft {
	if rec == nil || rec.Payload == nil {
		return domain.NewBriefDraft()
	}
	return rec.Payload.Clone()
}
