package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BrowseAllID is the pseudo-template offered alongside real templates. Its
// preset is always empty; picking it tells the selection model to open the
// full catalog instead of a preset bundle.
const BrowseAllID = "browse-all"

// Asset is one deliverable the agency offers, priced in tokens.
type Asset struct {
	ID          string
	Name        string
	Description string
	BasePrice   int
	Toggle      bool
	// overrides maps template id to an alternate unit price.
	overrides map[string]int
}

// Template is a named preset bundling catalog assets, optionally with
// per-asset price overrides declared on the assets themselves.
type Template struct {
	ID          string
	Name        string
	Description string
	Preset      []string
}

// Lead is an entry in the project-lead directory.
type Lead struct {
	ID   string
	Name string
	Role string
}

// Catalog is the read-only reference data a builder session is constructed
// with. It is an explicit value, never a package-level singleton, so tests
// can substitute their own.
type Catalog struct {
	assets    map[string]*Asset
	order     []string // asset ids in declaration order
	templates map[string]*Template
	tmplOrder []string
	workTypes []string
	channels  []string
	outputs   []string
	leads     []Lead
}

// New builds a Catalog from a validated schema.
func New(schema *Schema) (*Catalog, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog %q: %v", schema.ID, errs[0])
	}

	c := &Catalog{
		assets:    make(map[string]*Asset, len(schema.Assets)),
		templates: make(map[string]*Template, len(schema.Templates)),
		workTypes: append([]string(nil), schema.WorkTypes...),
		channels:  append([]string(nil), schema.Channels...),
		outputs:   append([]string(nil), schema.Outputs...),
	}

	for _, ac := range schema.Assets {
		asset := &Asset{
			ID:          ac.ID,
			Name:        ac.Name,
			Description: ac.Description,
			BasePrice:   ac.BasePrice,
			Toggle:      ac.Toggle,
		}
		if len(ac.TemplateOverrides) > 0 {
			asset.overrides = make(map[string]int, len(ac.TemplateOverrides))
			for k, v := range ac.TemplateOverrides {
				asset.overrides[k] = v
			}
		}
		c.assets[asset.ID] = asset
		c.order = append(c.order, asset.ID)
	}

	for _, tc := range schema.Templates {
		c.templates[tc.ID] = &Template{
			ID:          tc.ID,
			Name:        tc.Name,
			Description: tc.Description,
			Preset:      append([]string(nil), tc.Preset...),
		}
		c.tmplOrder = append(c.tmplOrder, tc.ID)
	}

	for _, lc := range schema.Leads {
		c.leads = append(c.leads, Lead{ID: lc.ID, Name: lc.Name, Role: lc.Role})
	}

	return c, nil
}

// LoadDir reads every *.json catalog schema in dir and merges the first valid
// one into a Catalog. Invalid files are skipped; an error is returned only
// when no usable schema is found.
func LoadDir(dir string) (*Catalog, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		schema, err := LoadSchema(file)
		if err != nil {
			continue // skip invalid files
		}
		c, err := New(schema)
		if err != nil {
			continue
		}
		return c, nil
	}
	return nil, fmt.Errorf("no usable catalog schema in %s", dir)
}

// Lookup returns the asset with the given id.
func (c *Catalog) Lookup(assetID string) (*Asset, bool) {
	a, ok := c.assets[assetID]
	return a, ok
}

// PriceFor returns the unit price for an asset in the context of a template.
// The template-specific override wins when one exists for that pair; an
// empty or unknown template id yields the base price. The second return is
// false for an unknown asset, which callers treat as "skip", never fatal.
func (c *Catalog) PriceFor(assetID, templateID string) (int, bool) {
	a, ok := c.assets[assetID]
	if !ok {
		return 0, false
	}
	if templateID != "" {
		if price, ok := a.overrides[templateID]; ok {
			return price, true
		}
	}
	return a.BasePrice, true
}

// PresetBundle returns the ordered asset ids preselected by a template.
// Unknown templates and the browse-all pseudo-template yield an empty bundle.
func (c *Catalog) PresetBundle(templateID string) []string {
	t, ok := c.templates[templateID]
	if !ok {
		return nil
	}
	return append([]string(nil), t.Preset...)
}

// TemplateByID returns the template with the given id.
func (c *Catalog) TemplateByID(id string) (*Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Templates returns all templates in declaration order.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, 0, len(c.tmplOrder))
	for _, id := range c.tmplOrder {
		out = append(out, c.templates[id])
	}
	return out
}

// Assets returns all assets in declaration order.
func (c *Catalog) Assets() []*Asset {
	out := make([]*Asset, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.assets[id])
	}
	return out
}

// ToggleAsset returns the catalog's designated binary add-on, if any.
func (c *Catalog) ToggleAsset() (*Asset, bool) {
	for _, id := range c.order {
		if c.assets[id].Toggle {
			return c.assets[id], true
		}
	}
	return nil, false
}

// WorkTypes, Channels and Outputs return the fixed multi-select vocabularies.
func (c *Catalog) WorkTypes() []string { return append([]string(nil), c.workTypes...) }
func (c *Catalog) Channels() []string  { return append([]string(nil), c.channels...) }
func (c *Catalog) Outputs() []string   { return append([]string(nil), c.outputs...) }

// Leads returns the project-lead directory.
func (c *Catalog) Leads() []Lead { return append([]Lead(nil), c.leads...) }

// LeadName resolves a lead id to its display name, falling back to the id.
func (c *Catalog) LeadName(id string) string {
	for _, l := range c.leads {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

// ResolveTemplate finds a template by id or display name, case-insensitive.
func (c *Catalog) ResolveTemplate(input string) (*Template, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("template %q not found: empty template name", input)
	}
	for _, id := range c.tmplOrder {
		t := c.templates[id]
		if strings.EqualFold(t.ID, trimmed) || strings.EqualFold(t.Name, trimmed) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("template %q not found", input)
}
