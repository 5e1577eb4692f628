package importer

import (
	"fmt"
	"strings"
	"time"
)

// ValidateDraftFile checks the import file for structural errors before
// conversion. Catalog references are resolved later, in Convert, because
// validation must not depend on which catalog is loaded.
// Returns a slice of all validation errors found.
func ValidateDraftFile(file *DraftFile) []error {
	var errs []error

	errs = append(errs, validateBrief(&file.Brief)...)
	errs = append(errs, validateDeliverables(file.Deliverables)...)

	for i, a := range file.Attachments {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("attachments[%d].name is required", i))
		}
		if a.SizeBytes < 0 {
			errs = append(errs, fmt.Errorf("attachments[%d].size_bytes must not be negative", i))
		}
	}

	return errs
}

func validateBrief(b *BriefImport) []error {
	var errs []error

	if strings.TrimSpace(b.Title) == "" {
		errs = append(errs, fmt.Errorf("brief.title is required"))
	}
	if b.DueDate != nil && *b.DueDate != "" {
		if _, err := time.Parse("2006-01-02", *b.DueDate); err != nil {
			errs = append(errs, fmt.Errorf("brief.due_date: invalid date format %q (expected YYYY-MM-DD)", *b.DueDate))
		}
	}
	for i, lead := range b.Leads {
		if strings.TrimSpace(lead) == "" {
			errs = append(errs, fmt.Errorf("brief.leads[%d]: id must not be blank", i))
		}
	}

	return errs
}

func validateDeliverables(items []DeliverableImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, d := range items {
		prefix := fmt.Sprintf("deliverables[%d]", i)

		hasCatalog := d.CatalogID != ""
		hasName := strings.TrimSpace(d.Name) != ""
		switch {
		case hasCatalog && hasName:
			errs = append(errs, fmt.Errorf("%s: catalog_id and name are mutually exclusive", prefix))
		case !hasCatalog && !hasName:
			errs = append(errs, fmt.Errorf("%s: either catalog_id or name is required", prefix))
		}

		if hasCatalog {
			if seen[d.CatalogID] {
				errs = append(errs, fmt.Errorf("%s: duplicate catalog_id %q", prefix, d.CatalogID))
			}
			seen[d.CatalogID] = true
		}

		if d.Quantity < 0 {
			errs = append(errs, fmt.Errorf("%s.quantity must not be negative", prefix))
		}
	}

	return errs
}
