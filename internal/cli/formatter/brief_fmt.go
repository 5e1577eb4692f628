package formatter

import (
	"fmt"
	"strings"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
)

// TokenLabel renders a token total with the converted currency estimate,
// e.g. "16 tk (~4000 EUR)". Provisional totals get the lower-bound tag.
func TokenLabel(tokens int, hasProvisional bool, cfg pricing.Config) string {
	label := fmt.Sprintf("%d tk", tokens)
	if cfg.TokenRate > 0 {
		label += Dim(fmt.Sprintf(" (~%.0f %s)", cfg.Currency(tokens), cfg.CurrencyCode))
	}
	return label + ProvisionalTag(hasProvisional)
}

// FormatBriefList renders committed briefs as a table, newest first.
func FormatBriefList(briefs []*domain.BriefRecord, cfg pricing.Config) string {
	headers := []string{"ID", "TITLE", "TEMPLATE", "DUE", "ITEMS", "TOKENS", "STATUS"}
	rows := make([][]string, 0, len(briefs))

	for _, b := range briefs {
		badge := b.TemplateBadge
		if badge == "" {
			badge = Dim("--")
		}
		due := b.DueDateLabel
		if due == "" {
			due = Dim("--")
		}
		rows = append(rows, []string{
			Dim(b.DisplayID()),
			Bold(b.Title),
			badge,
			due,
			fmt.Sprintf("%d", b.LineItemCount),
			TokenLabel(b.TokenTotal, b.HasProvisional, cfg),
			StatusPill(b.Status),
		})
	}

	return RenderTable(headers, rows)
}

// FormatBriefInspect renders one committed brief in full, line items included.
func FormatBriefInspect(b *domain.BriefRecord, cfg pricing.Config) string {
	var sb strings.Builder

	sb.WriteString(Header(b.Title))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), b.ID))
	sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusPill(b.Status)))
	if b.TemplateBadge != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Template:"), b.TemplateBadge))
	}
	if b.DueDateLabel != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Due:"), b.DueDateLabel))
	}
	if b.Description != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Summary:"), b.Description))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Total:"), TokenLabel(b.TokenTotal, b.HasProvisional, cfg)))

	if b.Payload == nil || len(b.Payload.Items) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(FormatLineItems(b.Payload.Items))
	return sb.String()
}

// FormatLineItems renders a draft's line items as a table. Custom items show
// a pending price instead of a token amount.
func FormatLineItems(items []*domain.LineItem) string {
	headers := []string{"DELIVERABLE", "QTY", "UNIT", "SUBTOTAL", "WEEK"}
	rows := make([][]string, 0, len(items))

	for _, li := range items {
		unit := fmt.Sprintf("%d tk", li.UnitPrice)
		subtotal := fmt.Sprintf("%d tk", li.Subtotal())
		if li.IsCustom {
			unit = StyleYellow.Render("pending")
			subtotal = StyleYellow.Render("pending")
		}
		week := li.DeliveryWeek
		if week == "" {
			week = Dim("--")
		}
		name := li.Name
		if li.IsCustom {
			name += Dim(" (custom)")
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", li.Quantity), unit, subtotal, week})
	}

	return RenderTable(headers, rows)
}

// FormatMissingFields renders the completeness gaps blocking submission.
func FormatMissingFields(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(StyleRed.Render("Still missing:"))
	for _, m := range missing {
		sb.WriteString("\n  " + StyleRed.Render("✗ ") + m)
	}
	return sb.String()
}
