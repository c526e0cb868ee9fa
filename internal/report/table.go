package report

import (
	"strconv"
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/scheduler"
)

// Title heads every rendered report.
const Title = "PRODUCTION PLANNING"

// TimestampLayout is how generation times are printed.
const TimestampLayout = "02/01/2006 15:04"

// Align is a column's horizontal alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
)

// Column describes one report column. Width is in millimetres on the PDF
// page and roughly characters in a spreadsheet.
type Column struct {
	Title   string
	Width   float64
	Align   Align
	Numeric bool
}

// Row is one plan rendered as cell text, plus its status for coloring.
type Row struct {
	Cells  []string
	Status scheduler.Status
}

// Table is the renderer-neutral report content.
type Table struct {
	Title       string
	GeneratedAt time.Time
	Columns     []Column
	Rows        []Row
}

// Columns is the fixed report layout.
var Columns = []Column{
	{Title: "Customer", Width: 45, Align: AlignLeft},
	{Title: "Product", Width: 36, Align: AlignLeft},
	{Title: "City", Width: 32, Align: AlignLeft},
	{Title: "Receipt", Width: 22, Align: AlignCenter},
	{Title: "Deadline (d)", Width: 19, Align: AlignCenter, Numeric: true},
	{Title: "Delivery", Width: 22, Align: AlignCenter},
	{Title: "Mfg (d)", Width: 15, Align: AlignCenter, Numeric: true},
	{Title: "Line", Width: 19, Align: AlignCenter},
	{Title: "Prod. Entry", Width: 22, Align: AlignCenter},
	{Title: "Days Left", Width: 18, Align: AlignCenter, Numeric: true},
	{Title: "Forecast", Width: 22, Align: AlignCenter},
}

// BuildTable lays plans out in the fixed column order, keeping their order.
func BuildTable(plans []*domain.ProductionPlan, generatedAt time.Time) *Table {
	t := &Table{
		Title:       Title,
		GeneratedAt: generatedAt,
		Columns:     Columns,
		Rows:        make([]Row, 0, len(plans)),
	}
	for _, p := range plans {
		t.Rows = append(t.Rows, Row{
			Cells: []string{
				p.Customer,
				p.ProductType,
				p.City,
				p.OrderReceiptDate.Display(),
				strconv.Itoa(p.NegotiatedDeadlineDays),
				p.ExpectedDeliveryDate.Display(),
				strconv.Itoa(p.ManufacturingTimeDays),
				string(p.ProductionLine),
				p.ProductionEntryDeadline.Display(),
				strconv.Itoa(p.DaysUntilProduction),
				p.CompletionForecast.Display(),
			},
			Status: scheduler.ClassifyStatus(p.DaysUntilProduction),
		})
	}
	return t
}

// GeneratedLabel is the "Generated at ..." line printed under the title.
func (t *Table) GeneratedLabel() string {
	return "Generated at " + t.GeneratedAt.Format(TimestampLayout)
}
