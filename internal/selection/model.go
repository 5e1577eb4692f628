package selection

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// Mode says where the current line-item set came from: a template's preset
// bundle, or a free browse of the full catalog.
type Mode string

const (
	ModeTemplate  Mode = "template"
	ModeBrowseAll Mode = "browse_all"
)

// Model owns every mutation of a draft's line items. Catalog-derived lines
// use the catalog asset id as their line id, so adding the same asset twice
// increments quantity instead of duplicating the line. Custom lines get a
// fresh UUID.
type Model struct {
	cat   *catalog.Catalog
	cfg   pricing.Config
	draft *domain.BriefDraft
	mode  Mode

	// onRemove lets view layers react to removals (e.g. collapse the row's
	// expanded-details state). Removal is always announced through it,
	// whatever operation caused it.
	onRemove func(lineID string)

	observer Observer
}

// NewModel binds a selection model to a draft. The draft's existing items are
// left untouched; mode starts as browse-all unless the draft carries a
// template.
func NewModel(cat *catalog.Catalog, cfg pricing.Config, draft *domain.BriefDraft, observers ...Observer) *Model {
	mode := ModeBrowseAll
	if draft.TemplateID != "" {
		mode = ModeTemplate
	}
	return &Model{
		cat:      cat,
		cfg:      cfg,
		draft:    draft,
		mode:     mode,
		observer: observerOrNoop(observers),
	}
}

// Mode returns the current selection mode.
func (m *Model) Mode() Mode { return m.mode }

// OnRemove registers the removal hook. A nil hook disables notifications.
func (m *Model) OnRemove(fn func(lineID string)) { m.onRemove = fn }

// SetTemplate replaces all non-custom line items with the template's preset
// bundle, priced for that template at the moment of the switch. Custom items
// survive untouched. Specification and delivery-week text survive for any
// asset present both before and after the switch.
func (m *Model) SetTemplate(templateID string) {
	if _, ok := m.cat.TemplateByID(templateID); !ok {
		m.observer.OnUnknownReference("set_template", templateID)
		return
	}

	type annotations struct {
		specification string
		deliveryWeek  string
	}
	carried := make(map[string]annotations)
	var custom []*domain.LineItem
	for _, li := range m.draft.Items {
		if li.IsCustom {
			custom = append(custom, li)
			continue
		}
		carried[li.ID] = annotations{li.Specification, li.DeliveryWeek}
		m.notifyRemove(li.ID)
	}

	items := make([]*domain.LineItem, 0, len(custom)+4)
	for _, assetID := range m.cat.PresetBundle(templateID) {
		asset, ok := m.cat.Lookup(assetID)
		if !ok {
			continue // unknown preset entries are skipped, never fatal
		}
		price, _ := m.cat.PriceFor(assetID, templateID)
		li := &domain.LineItem{
			ID:          assetID,
			CatalogID:   assetID,
			Name:        asset.Name,
			Description: asset.Description,
			UnitPrice:   price,
			Quantity:    1,
		}
		if prev, ok := carried[assetID]; ok {
			li.Specification = prev.specification
			li.DeliveryWeek = prev.deliveryWeek
		}
		items = append(items, li)
	}
	items = append(items, custom...)

	m.draft.Items = items
	m.draft.TemplateID = templateID
	m.mode = ModeTemplate
	m.syncWatermark()
}

// SetBrowseAll clears all non-custom line items and opens the full catalog.
// No template remains selected afterwards.
func (m *Model) SetBrowseAll() {
	var custom []*domain.LineItem
	for _, li := range m.draft.Items {
		if li.IsCustom {
			custom = append(custom, li)
			continue
		}
		m.notifyRemove(li.ID)
	}
	m.draft.Items = custom
	m.draft.TemplateID = ""
	m.mode = ModeBrowseAll
	m.syncWatermark()
}

// Add selects a catalog asset. Absent assets are inserted at quantity 1;
// present assets increment, except the designated toggle asset, which flips
// between absent and quantity 1. Unknown catalog ids are skipped.
func (m *Model) Add(catalogID string) {
	asset, ok := m.cat.Lookup(catalogID)
	if !ok {
		m.observer.OnUnknownReference("add", catalogID)
		return
	}

	if li := m.draft.ItemByID(catalogID); li != nil {
		if asset.Toggle {
			m.Remove(catalogID) // checked -> unchecked
			return
		}
		li.Quantity++
		return
	}

	price, _ := m.cat.PriceFor(catalogID, m.draft.TemplateID)
	m.draft.Items = append(m.draft.Items, &domain.LineItem{
		ID:          catalogID,
		CatalogID:   catalogID,
		Name:        asset.Name,
		Description: asset.Description,
		UnitPrice:   price,
		Quantity:    1,
	})
	m.syncWatermark()
}

// AdjustQuantity changes a line's quantity by delta. A result at or below
// zero removes the line entirely. The toggle asset never climbs past 1.
func (m *Model) AdjustQuantity(lineID string, delta int) {
	li := m.draft.ItemByID(lineID)
	if li == nil {
		m.observer.OnUnknownReference("adjust_quantity", lineID)
		return
	}

	next := li.Quantity + delta
	if next <= 0 {
		m.Remove(lineID)
		return
	}
	if m.isToggle(li) && next > 1 {
		next = 1
	}
	li.Quantity = next
}

// CommitQuantityText commits free-text quantity entry. Blank or non-positive
// input means the user emptied the line: it is removed, never reported as an
// error.
func (m *Model) CommitQuantityText(lineID, raw string) {
	li := m.draft.ItemByID(lineID)
	if li == nil {
		m.observer.OnUnknownReference("commit_quantity", lineID)
		return
	}

	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		m.Remove(lineID)
		return
	}
	if m.isToggle(li) && qty > 1 {
		qty = 1
	}
	li.Quantity = qty
}

// Remove deletes a line item. Unknown ids are a no-op.
func (m *Model) Remove(lineID string) {
	items := m.draft.Items
	for i, li := range items {
		if li.ID != lineID {
			continue
		}
		m.draft.Items = append(items[:i], items[i+1:]...)
		m.notifyRemove(lineID)
		m.syncWatermark()
		return
	}
	m.observer.OnUnknownReference("remove", lineID)
}

// ClearAll removes every line item, custom ones included. Destructive and
// only ever user-initiated.
func (m *Model) ClearAll() {
	for _, li := range m.draft.Items {
		m.notifyRemove(li.ID)
	}
	m.draft.Items = nil
	m.syncWatermark()
}

// AddCustom appends a user-defined line item. The stored price is the
// configured display placeholder; custom lines are priced by the agency
// later and never count toward the token total.
func (m *Model) AddCustom(name, description string, quantity int) (*domain.LineItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankCustomName
	}
	if quantity < 1 {
		quantity = 1
	}
	li := &domain.LineItem{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(name),
		Description:   description,
		UnitPrice:     m.cfg.CustomPlaceholder,
		Quantity:      quantity,
		Specification: description,
		IsCustom:      true,
	}
	m.draft.Items = append(m.draft.Items, li)
	return li, nil
}

// UpdateSpecification sets a line's free-text delivery requirements.
func (m *Model) UpdateSpecification(lineID, text string) {
	li := m.draft.ItemByID(lineID)
	if li == nil {
		m.observer.OnUnknownReference("update_specification", lineID)
		return
	}
	li.Specification = text
}

// UpdateDeliveryWeek sets a line's free-text delivery week label.
func (m *Model) UpdateDeliveryWeek(lineID, text string) {
	li := m.draft.ItemByID(lineID)
	if li == nil {
		m.observer.OnUnknownReference("update_delivery_week", lineID)
		return
	}
	li.DeliveryWeek = text
}

// Quote recomputes the draft's token total and provisional flag.
func (m *Model) Quote() pricing.Quote {
	return pricing.Compute(m.draft.Items)
}

func (m *Model) isToggle(li *domain.LineItem) bool {
	if li.CatalogID == "" {
		return false
	}
	asset, ok := m.cat.Lookup(li.CatalogID)
	return ok && asset.Toggle
}

// syncWatermark mirrors the toggle line's presence onto the draft flag.
func (m *Model) syncWatermark() {
	toggle, ok := m.cat.ToggleAsset()
	if !ok {
		return
	}
	m.draft.WatermarkAllFiles = m.draft.ItemByID(toggle.ID) != nil
}

func (m *Model) notifyRemove(lineID string) {
	if m.onRemove != nil {
		m.onRemove(lineID)
	}
}
