package formatter

import (
	"fmt"
	"strings"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/mkowalczyk/briefdesk/internal/review"
)

// FormatReviewSummary renders the pre-submit review screen. Change-request
// sessions get per-field and per-item change markers; first-time submissions
// render plain.
func FormatReviewSummary(s review.Summary, cfg pricing.Config) string {
	var sb strings.Builder

	title := "Review brief"
	if s.IsChangeRequest {
		title = "Review change request"
	}
	sb.WriteString(Header(title))
	sb.WriteString("\n")

	sb.WriteString(formatReviewFields(s))
	sb.WriteString("\n")
	sb.WriteString(formatReviewItems(s.Items))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Total:"), TokenLabel(s.Quote.TokenTotal, s.Quote.HasProvisional, cfg)))

	if s.Quote.HasProvisional {
		sb.WriteString(Dim("Custom deliverables are priced by the studio after submission; the total above is a lower bound.\n"))
	}
	return sb.String()
}

func formatReviewFields(s review.Summary) string {
	var sb strings.Builder

	value := fieldValues(s.Draft)
	for _, f := range s.Fields {
		v, ok := value[f.Name]
		if !ok || v == "" {
			continue
		}
		marker := "  "
		if f.Changed {
			marker = StyleYellow.Render("~ ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", marker, Dim(f.Name+":"), v))
	}
	return sb.String()
}

func formatReviewItems(d review.LineItemDiff) string {
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("Deliverables"))
	sb.WriteString("\n")

	for _, li := range d.Unchanged {
		sb.WriteString(fmt.Sprintf("  %s\n", itemLine(li)))
	}
	for _, li := range d.Modified {
		sb.WriteString(fmt.Sprintf("%s%s\n", StyleYellow.Render("~ "), itemLine(li)))
	}
	for _, li := range d.Added {
		sb.WriteString(fmt.Sprintf("%s%s\n", StyleGreen.Render("+ "), itemLine(li)))
	}
	for _, li := range d.Removed {
		sb.WriteString(fmt.Sprintf("%s%s\n", StyleRed.Render("- "), StyleDim.Strikethrough(true).Render(plainItemLine(li))))
	}
	return sb.String()
}

func itemLine(li *domain.LineItem) string {
	price := fmt.Sprintf("%d tk", li.Subtotal())
	if li.IsCustom {
		price = StyleYellow.Render("pending")
	}
	line := fmt.Sprintf("%s ×%d  %s", Bold(li.Name), li.Quantity, price)
	if li.DeliveryWeek != "" {
		line += Dim("  " + li.DeliveryWeek)
	}
	return line
}

func plainItemLine(li *domain.LineItem) string {
	return fmt.Sprintf("%s ×%d", li.Name, li.Quantity)
}

func fieldValues(d *domain.BriefDraft) map[string]string {
	due := ""
	if d.DueDate != nil {
		due = d.DueDate.Format("2 Jan 2006")
	}
	nda := ""
	if d.UnderNDA {
		nda = "yes"
	}
	watermark := ""
	if d.WatermarkAllFiles {
		watermark = "yes"
	}
	return map[string]string{
		"Project title":       d.Title,
		"Due date":            due,
		"Project leads":       strings.Join(d.Leads, ", "),
		"Under NDA":           nda,
		"Objective":           d.Objective,
		"Target audience":     d.TargetAudience,
		"Brief summary":       d.Summary,
		"Work types":          strings.Join(d.WorkTypes, ", "),
		"Channels":            strings.Join(d.Channels, ", "),
		"Expected outputs":    strings.Join(d.Outputs, ", "),
		"Template":            d.TemplateID,
		"Watermark all files": watermark,
	}
}
