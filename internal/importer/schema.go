package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// DraftFile is the top-level JSON structure for brief import.
type DraftFile struct {
	Brief        BriefImport         `json:"brief"`
	Deliverables []DeliverableImport `json:"deliverables"`
	Attachments  []AttachmentImport  `json:"attachments,omitempty"`
}

// AttachmentImport references a supporting document by name and size. The
// file contents are never read.
type AttachmentImport struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// BriefImport defines the brief-level fields in the import file.
type BriefImport struct {
	Title          string   `json:"title"`
	DueDate        *string  `json:"due_date,omitempty"`
	Leads          []string `json:"leads,omitempty"`
	UnderNDA       bool     `json:"under_nda,omitempty"`
	Objective      string   `json:"objective,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	WorkTypes      []string `json:"work_types,omitempty"`
	Channels       []string `json:"channels,omitempty"`
	Outputs        []string `json:"outputs,omitempty"`
	Template       string   `json:"template,omitempty"`
}

// DeliverableImport defines one line item in the import file. Catalog lines
// set catalog_id; custom lines set name instead.
type DeliverableImport struct {
	CatalogID     string `json:"catalog_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Quantity      int    `json:"quantity"`
	Specification string `json:"specification,omitempty"`
	DeliveryWeek  string `json:"delivery_week,omitempty"`
}

// LoadDraftFile reads and parses a brief import JSON file.
func LoadDraftFile(path string) (*DraftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file DraftFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}
