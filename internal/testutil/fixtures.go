package testutil

import (
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/google/uuid"
)

// PlanOption customizes a plan built by NewTestPlan.
type PlanOption func(*domain.ProductionPlan)

func WithLine(l domain.ProductionLine) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.ProductionLine = l
	}
}

func WithCreatedAt(t time.Time) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.CreatedAt = t
	}
}

func WithReceipt(d domain.Date) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.OrderReceiptDate = d
	}
}

func WithDays(negotiated, manufacturing int) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.NegotiatedDeadlineDays = negotiated
		p.ManufacturingTimeDays = manufacturing
	}
}

func WithDaysUntilProduction(n int) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.DaysUntilProduction = n
	}
}

func WithID(id string) PlanOption {
	return func(p *domain.ProductionPlan) {
		p.ID = id
	}
}

// NewTestPlan returns a valid plan for customer with derived-looking dates.
func NewTestPlan(customer string, opts ...PlanOption) *domain.ProductionPlan {
	receipt := domain.NewDate(2024, time.June, 1)
	p := &domain.ProductionPlan{
		ID:                      uuid.New().String(),
		Customer:                customer,
		ProductType:             "Coils",
		City:                    "Joinville",
		OrderReceiptDate:        receipt,
		NegotiatedDeadlineDays:  20,
		ManufacturingTimeDays:   5,
		ProductionLine:          domain.LineMTL01,
		ExpectedDeliveryDate:    receipt.AddDays(20),
		ProductionEntryDeadline: receipt.AddDays(15),
		DaysUntilProduction:     15,
		CompletionForecast:      receipt.AddDays(20),
		CreatedAt:               time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
