package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Schema is the top-level JSON catalog structure: the deliverable assets, the
// brief templates with their preset bundles, the fixed vocabularies and the
// project-lead directory for one agency account.
type Schema struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description,omitempty"`
	Assets      []AssetConfig    `json:"assets"`
	Templates   []TemplateConfig `json:"templates,omitempty"`
	WorkTypes   []string         `json:"work_types,omitempty"`
	Channels    []string         `json:"channels,omitempty"`
	Outputs     []string         `json:"outputs,omitempty"`
	Leads       []LeadConfig     `json:"leads,omitempty"`
}

type AssetConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BasePrice   int    `json:"base_price"`
	// Toggle marks a binary add-on (quantity is only ever 0 or 1),
	// e.g. the watermark-all-files flag.
	Toggle bool `json:"toggle,omitempty"`
	// TemplateOverrides maps template id to an alternate unit price used
	// instead of base_price while that template is active.
	TemplateOverrides map[string]int `json:"template_overrides,omitempty"`
}

type TemplateConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Preset is the ordered asset bundle selected when the template is
	// picked. Every template must declare its bundle explicitly; an empty
	// list is valid and means "start with nothing selected".
	Preset []string `json:"preset"`
}

type LeadConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// LoadSchema reads and parses a catalog JSON file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// ValidateSchema checks a Schema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("catalog id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("catalog name is required"))
	}
	if len(schema.Assets) == 0 {
		errs = append(errs, fmt.Errorf("at least one asset is required"))
	}

	assetIDs := map[string]bool{}
	toggleCount := 0
	for i, a := range schema.Assets {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("asset[%d]: id is required", i))
		}
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("asset[%d]: name is required", i))
		}
		if a.BasePrice < 0 {
			errs = append(errs, fmt.Errorf("asset[%d]: base_price must be non-negative", i))
		}
		if assetIDs[a.ID] {
			errs = append(errs, fmt.Errorf("asset[%d]: duplicate id %q", i, a.ID))
		}
		assetIDs[a.ID] = true
		if a.Toggle {
			toggleCount++
		}
		for _, price := range a.TemplateOverrides {
			if price < 0 {
				errs = append(errs, fmt.Errorf("asset[%d]: template override must be non-negative", i))
			}
		}
	}
	if toggleCount > 1 {
		errs = append(errs, fmt.Errorf("at most one toggle asset is allowed"))
	}

	templateIDs := map[string]bool{}
	for i, t := range schema.Templates {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("template[%d]: id is required", i))
		}
		if t.ID == BrowseAllID {
			errs = append(errs, fmt.Errorf("template[%d]: id %q is reserved", i, BrowseAllID))
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("template[%d]: name is required", i))
		}
		if templateIDs[t.ID] {
			errs = append(errs, fmt.Errorf("template[%d]: duplicate id %q", i, t.ID))
		}
		templateIDs[t.ID] = true
		for _, assetID := range t.Preset {
			if !assetIDs[assetID] {
				errs = append(errs, fmt.Errorf("template[%d]: preset references unknown asset %q", i, assetID))
			}
		}
	}

	// Overrides must point at declared templates.
	for i, a := range schema.Assets {
		for tmplID := range a.TemplateOverrides {
			if !templateIDs[tmplID] {
				errs = append(errs, fmt.Errorf("asset[%d]: override references unknown template %q", i, tmplID))
			}
		}
	}

	leadIDs := map[string]bool{}
	for i, l := range schema.Leads {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("lead[%d]: id is required", i))
		}
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("lead[%d]: name is required", i))
		}
		if leadIDs[l.ID] {
			errs = append(errs, fmt.Errorf("lead[%d]: duplicate id %q", i, l.ID))
		}
		leadIDs[l.ID] = true
	}

	return errs
}
