package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/scheduler"
)

// FormatPlanList renders plans as a table in the order given.
func FormatPlanList(plans []*domain.ProductionPlan) string {
	headers := []string{"ID", "CUSTOMER", "PRODUCT", "CITY", "LINE", "RECEIPT", "DELIVERY", "PROD. ENTRY", "DAYS", "STATUS"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(Truncate(p.Customer, 28)),
			Truncate(p.ProductType, 20),
			Truncate(p.City, 18),
			LineBadge(p.ProductionLine),
			DisplayDate(p.OrderReceiptDate),
			DisplayDate(p.ExpectedDeliveryDate),
			DisplayDate(p.ProductionEntryDeadline),
			DaysLeft(p.DaysUntilProduction),
			StatusIndicator(p.DaysUntilProduction),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, RightAlign(8)))
	b.WriteString(Dim(fmt.Sprintf("%d plan(s)%s", len(plans), statusTally(plans))))
	b.WriteString("\n")
	return b.String()
}

// statusTally summarizes how many plans are late or due within DueSoonDays.
func statusTally(plans []*domain.ProductionPlan) string {
	late, soon := 0, 0
	for _, p := range plans {
		switch scheduler.ClassifyStatus(p.DaysUntilProduction).Bucket {
		case domain.StatusLate:
			late++
		case domain.StatusDueToday, domain.StatusDueSoon:
			soon++
		}
	}
	if late == 0 && soon == 0 {
		return ""
	}
	return fmt.Sprintf(" · %d late · %d due soon", late, soon)
}

// FormatPlanDetail renders every field of one plan inside a box.
func FormatPlanDetail(p *domain.ProductionPlan) string {
	label := func(s string) string { return Dim(fmt.Sprintf("%-24s", s)) }

	lines := []string{
		label("ID") + p.ID,
		label("Customer") + Bold(p.Customer),
		label("Product type") + p.ProductType,
		label("City") + p.City,
		label("Production line") + LineBadge(p.ProductionLine),
		"",
		label("Order receipt") + DisplayDate(p.OrderReceiptDate),
		label("Negotiated deadline") + fmt.Sprintf("%d day(s)", p.NegotiatedDeadlineDays),
		label("Manufacturing time") + fmt.Sprintf("%d day(s)", p.ManufacturingTimeDays),
		"",
		label("Expected delivery") + DisplayDate(p.ExpectedDeliveryDate),
		label("Production entry") + DisplayDate(p.ProductionEntryDeadline),
		label("Days until production") + DaysLeft(p.DaysUntilProduction),
		label("Completion forecast") + DisplayDate(p.CompletionForecast),
		label("Status") + StatusIndicator(p.DaysUntilProduction),
		label("Slack to entry") + RenderSlack(p.DaysUntilProduction,
			SlackWindow(p.NegotiatedDeadlineDays, p.ManufacturingTimeDays), 20),
		"",
		label("Created") + Dim(p.CreatedAt.Local().Format("02/01/2006 15:04")),
	}
	return RenderBox("Production plan", strings.Join(lines, "\n"))
}

// FormatDerivation renders a derivation preview for the given inputs.
func FormatDerivation(receipt domain.Date, negotiated, manufacturing int, d scheduler.DerivedDates) string {
	label := func(s string) string { return Dim(fmt.Sprintf("%-24s", s)) }
	lines := []string{
		label("Order receipt") + receipt.Display(),
		label("Negotiated deadline") + fmt.Sprintf("%d day(s)", negotiated),
		label("Manufacturing time") + fmt.Sprintf("%d day(s)", manufacturing),
		"",
		label("Expected delivery") + d.ExpectedDeliveryDate.Display(),
		label("Production entry") + d.ProductionEntryDeadline.Display(),
		label("Days until production") + DaysLeft(d.DaysUntilProduction),
		label("Completion forecast") + d.CompletionForecast.Display(),
		label("Status") + StatusIndicator(d.DaysUntilProduction),
	}
	return RenderBox("Derived dates", strings.Join(lines, "\n"))
}

// FormatLines lists the production lines, marking the default one.
func FormatLines(lines []domain.ProductionLine, def domain.ProductionLine) string {
	var b strings.Builder
	b.WriteString(Header("Production lines"))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString("  ")
		b.WriteString(LineBadge(l))
		if l == def {
			b.WriteString(Dim("  (default)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
