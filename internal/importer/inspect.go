package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
)

// Inspect reports anomalies in an imported batch. The findings are
// informational: the batch is imported as-is either way.
func Inspect(plans []*domain.ProductionPlan) []string {
	var notes []string
	seen := make(map[string]int, len(plans))

	for i, p := range plans {
		label := fmt.Sprintf("record %d", i+1)
		if p.Customer != "" {
			label += fmt.Sprintf(" (%s)", p.Customer)
		}

		if strings.TrimSpace(p.ID) == "" {
			notes = append(notes, label+": no id")
		} else if first, dup := seen[p.ID]; dup {
			notes = append(notes, fmt.Sprintf("%s: id repeats record %d", label, first+1))
		} else {
			seen[p.ID] = i
		}

		if p.ProductionLine != "" && !p.ProductionLine.IsValid() {
			notes = append(notes, fmt.Sprintf("%s: unknown production line %q", label, p.ProductionLine))
		}
		if p.CreatedAt.IsZero() {
			notes = append(notes, label+": no creation timestamp")
		}
	}
	return notes
}
