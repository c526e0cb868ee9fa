package scheduler

import "github.com/alexanderramin/prodplan/internal/domain"

// DerivedDates holds the dates computed from an order's receipt date.
type DerivedDates struct {
	ExpectedDeliveryDate    domain.Date
	ProductionEntryDeadline domain.Date
	DaysUntilProduction     int
	CompletionForecast      domain.Date
}

// DeriveDates computes delivery, production-entry deadline, days remaining
// and completion forecast. ok is false when receipt is unset.
//
// Completion is assumed to coincide with delivery: production that starts on
// the entry deadline finishes exactly on the delivery date.
func DeriveDates(receipt domain.Date, negotiatedDays, manufacturingDays int, today domain.Date) (DerivedDates, bool) {
	if receipt.IsZero() {
		return DerivedDates{}, false
	}
	delivery := receipt.AddDays(negotiatedDays)
	entry := delivery.AddDays(-manufacturingDays)
	return DerivedDates{
		ExpectedDeliveryDate:    delivery,
		ProductionEntryDeadline: entry,
		DaysUntilProduction:     entry.DaysSince(today),
		CompletionForecast:      delivery,
	}, true
}

// ApplyDerived overwrites the derived fields of p from its source fields.
// It leaves p untouched and returns false when the receipt date is unset.
func ApplyDerived(p *domain.ProductionPlan, today domain.Date) bool {
	d, ok := DeriveDates(p.OrderReceiptDate, p.NegotiatedDeadlineDays, p.ManufacturingTimeDays, today)
	if !ok {
		return false
	}
	p.ExpectedDeliveryDate = d.ExpectedDeliveryDate
	p.ProductionEntryDeadline = d.ProductionEntryDeadline
	p.DaysUntilProduction = d.DaysUntilProduction
	p.CompletionForecast = d.CompletionForecast
	return true
}
