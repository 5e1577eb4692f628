package pricing

import "github.com/mkowalczyk/briefdesk/internal/domain"

// Quote is the derived price of a set of line items. TokenTotal is a lower
// bound whenever HasProvisional is set: custom items are priced by the agency
// after submission and contribute nothing to the total here.
type Quote struct {
	TokenTotal     int
	HasProvisional bool
}

// Compute sums the line items into a quote. Pure and deterministic; callers
// rerun it on every mutation for live feedback.
func Compute(items []*domain.LineItem) Quote {
	var q Quote
	for _, li := range items {
		if li.IsCustom {
			q.HasProvisional = true
			continue
		}
		q.TokenTotal += li.UnitPrice * li.Quantity
	}
	return q
}
