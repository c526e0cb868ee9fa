package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	v := validateRequired("customer")
	assert.NoError(t, v("Acme"))
	err := v("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer is required")
}

func TestValidateNonNegativeInt(t *testing.T) {
	assert.NoError(t, validateNonNegativeInt(""))
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.NoError(t, validateNonNegativeInt("45"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateNonNegativeInt("ten"))
}

func TestValidateRequiredDate(t *testing.T) {
	assert.NoError(t, validateRequiredDate("2024-02-29"))
	assert.Error(t, validateRequiredDate(""))
	assert.Error(t, validateRequiredDate("29/02/2024"))
}

func TestPlanFormValues_Defaults(t *testing.T) {
	v := newPlanFormValues(domain.NewDate(2024, time.June, 10))
	assert.Equal(t, "2024-06-10", v.Receipt)
	assert.Equal(t, domain.DefaultLine, v.Line)
}

func TestPlanFormValues_ToPlan(t *testing.T) {
	v := &planFormValues{
		Customer:     "  Acme  ",
		ProductType:  "Coils",
		City:         "Joinville",
		Receipt:      "2024-06-01",
		DeadlineDays: "20",
		MfgDays:      "",
		Line:         domain.LineMCO02,
	}
	p, err := v.toPlan()
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Customer)
	assert.Equal(t, domain.NewDate(2024, time.June, 1), p.OrderReceiptDate)
	assert.Equal(t, 20, p.NegotiatedDeadlineDays)
	assert.Equal(t, 0, p.ManufacturingTimeDays)
	assert.Equal(t, domain.LineMCO02, p.ProductionLine)
	assert.True(t, p.ExpectedDeliveryDate.IsZero())

	v.MfgDays = "x"
	_, err = v.toPlan()
	assert.ErrorContains(t, err, "manufacturing time")
}

func TestLineOptions(t *testing.T) {
	opts := lineOptions()
	require.Len(t, opts, len(domain.ProductionLines))
	assert.Equal(t, domain.LineMTL01, opts[0].Value)
}
