package service

import (
	"strings"
	"time"

	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/domain"
)

// FilterPlans returns the plans matching every set predicate of f, in input
// order. The creation day is taken in loc (local time when nil).
func FilterPlans(plans []*domain.ProductionPlan, f contract.PlanFilter, loc *time.Location) []*domain.ProductionPlan {
	if loc == nil {
		loc = time.Local
	}
	needle := strings.ToLower(strings.TrimSpace(f.Customer))

	out := make([]*domain.ProductionPlan, 0, len(plans))
	for _, p := range plans {
		if !f.Date.IsZero() && !domain.DateOf(p.CreatedAt.In(loc)).Equal(f.Date) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Customer), needle) {
			continue
		}
		if f.Line != "" && p.ProductionLine != f.Line {
			continue
		}
		out = append(out, p)
	}
	return out
}
