package contract

import "github.com/alexanderramin/prodplan/internal/domain"

// PlanFilter narrows the records table. Zero-valued fields match everything;
// set fields are AND-combined.
type PlanFilter struct {
	// Date matches the calendar day a plan was created on.
	Date domain.Date
	// Customer is a case-insensitive substring of the customer name.
	Customer string
	// Line matches the production line exactly.
	Line domain.ProductionLine
}

// IsEmpty reports whether the filter has no active predicate.
func (f PlanFilter) IsEmpty() bool {
	return f.Date.IsZero() && f.Customer == "" && f.Line == ""
}
