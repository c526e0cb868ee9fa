package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMissingField is returned when a required plan field is empty.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidLine is returned for a production line outside ProductionLines.
	ErrInvalidLine = errors.New("unknown production line")

	// ErrNegativeDays is returned when a day count is below zero.
	ErrNegativeDays = errors.New("day count must not be negative")
)

// ProductionPlan is one order scheduled on a production line. The JSON tags
// are the persisted and backup wire format.
type ProductionPlan struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	ProductType string `json:"productType"`
	City        string `json:"city"`

	OrderReceiptDate       Date `json:"orderReceiptDate"`
	NegotiatedDeadlineDays int  `json:"negotiatedDeadlineDays"`
	ManufacturingTimeDays  int  `json:"manufacturingTimeDays"`

	ProductionLine ProductionLine `json:"productionLine"`

	// Derived by default, but stored as entered: an operator may override
	// any of these and nothing re-checks them against the receipt date.
	ExpectedDeliveryDate    Date `json:"expectedDeliveryDate"`
	ProductionEntryDeadline Date `json:"productionEntryDeadline"`
	DaysUntilProduction     int  `json:"daysUntilProduction"`
	CompletionForecast      Date `json:"completionForecast"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks required-field presence and the closed value sets.
func (p *ProductionPlan) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"customer", p.Customer},
		{"product type", p.ProductType},
		{"city", p.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
	}
	if p.OrderReceiptDate.IsZero() {
		return fmt.Errorf("order receipt date: %w", ErrMissingField)
	}
	if p.NegotiatedDeadlineDays < 0 {
		return fmt.Errorf("negotiated deadline: %w", ErrNegativeDays)
	}
	if p.ManufacturingTimeDays < 0 {
		return fmt.Errorf("manufacturing time: %w", ErrNegativeDays)
	}
	if !p.ProductionLine.IsValid() {
		return fmt.Errorf("%q: %w", p.ProductionLine, ErrInvalidLine)
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (p *ProductionPlan) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Clone returns an independent copy of p.
func (p *ProductionPlan) Clone() *ProductionPlan {
	c := *p
	return &c
}
