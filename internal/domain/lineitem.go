package domain

// LineItem is one selected deliverable on a brief, either copied from the
// catalog at selection time or entered by hand ("custom").
type LineItem struct {
	// ID identifies the line within its draft. Catalog-derived lines reuse
	// the catalog asset id (one line per asset); custom lines get a UUID.
	ID          string
	CatalogID   string // empty for custom lines
	Name        string
	Description string

	// UnitPrice is in tokens. For custom lines the stored value is a display
	// placeholder only; custom pricing is agency-determined later.
	UnitPrice int
	Quantity  int

	Specification string // free-text delivery requirements
	DeliveryWeek  string // free-text week label

	IsCustom bool
}

// Subtotal returns the line's token contribution. Custom lines always
// contribute zero: their price is provisional until the agency scopes them.
func (li *LineItem) Subtotal() int {
	if li.IsCustom {
		return 0
	}
	return li.UnitPrice * li.Quantity
}

// Clone returns a deep copy of the line item.
func (li *LineItem) Clone() *LineItem {
	c := *li
	return &c
}

// SameContent reports whether the two lines carry identical quantity and
// annotations. Used by the review diff to classify a line as modified.
func (li *LineItem) SameContent(other *LineItem) bool {
	if other == nil {
		return false
	}
	return li.Quantity == other.Quantity &&
		li.Specification == other.Specification &&
		li.DeliveryWeek == other.DeliveryWeek
}
