package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/charmbracelet/huh"
)

// planFormValues backs the order-entry form. Numeric fields are kept as
// text so huh inputs can bind to them.
type planFormValues struct {
	Customer     string
	ProductType  string
	City         string
	Receipt      string
	DeadlineDays string
	MfgDays      string
	Line         domain.ProductionLine
}

func newPlanFormValues(today domain.Date) *planFormValues {
	return &planFormValues{
		Receipt:      today.String(),
		DeadlineDays: "0",
		MfgDays:      "0",
		Line:         domain.DefaultLine,
	}
}

// toPlan converts the submitted values into a plan without derived dates.
func (v *planFormValues) toPlan() (*domain.ProductionPlan, error) {
	receipt, err := domain.ParseDate(v.Receipt)
	if err != nil {
		return nil, err
	}
	deadline, err := atoiOrZero(v.DeadlineDays)
	if err != nil {
		return nil, fmt.Errorf("negotiated deadline: %w", err)
	}
	mfg, err := atoiOrZero(v.MfgDays)
	if err != nil {
		return nil, fmt.Errorf("manufacturing time: %w", err)
	}
	return &domain.ProductionPlan{
		Customer:               strings.TrimSpace(v.Customer),
		ProductType:            strings.TrimSpace(v.ProductType),
		City:                   strings.TrimSpace(v.City),
		OrderReceiptDate:       receipt,
		NegotiatedDeadlineDays: deadline,
		ManufacturingTimeDays:  mfg,
		ProductionLine:         v.Line,
	}, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func lineOptions() []huh.Option[domain.ProductionLine] {
	opts := make([]huh.Option[domain.ProductionLine], 0, len(domain.ProductionLines))
	for _, l := range domain.ProductionLines {
		opts = append(opts, huh.NewOption(string(l), l))
	}
	return opts
}

// planForm builds the order-entry form: order details, then scheduling.
func planForm(v *planFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Customer").Value(&v.Customer).Validate(validateRequired("customer")),
			huh.NewInput().Title("Product type").Value(&v.ProductType).Validate(validateRequired("product type")),
			huh.NewInput().Title("City").Value(&v.City).Validate(validateRequired("city")),
		).Title("Order"),
		huh.NewGroup(
			huh.NewInput().Title("Order receipt date").Placeholder("YYYY-MM-DD").Value(&v.Receipt).Validate(validateRequiredDate),
			huh.NewInput().Title("Negotiated deadline (days)").Value(&v.DeadlineDays).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Manufacturing time (days)").Value(&v.MfgDays).Validate(validateNonNegativeInt),
			huh.NewSelect[domain.ProductionLine]().Title("Production line").Options(lineOptions()...).Value(&v.Line),
		).Title("Scheduling"),
	).WithTheme(prodplanHuhTheme()).WithShowHelp(false)
}
