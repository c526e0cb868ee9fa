package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func plan(id, customer string, days int, entry domain.Date) *domain.ProductionPlan {
	return &domain.ProductionPlan{ID: id, Customer: customer, DaysUntilProduction: days, ProductionEntryDeadline: entry}
}

func ids(plans []*domain.ProductionPlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.ID
	}
	return out
}

func TestUrgencySort_StatusThenDays(t *testing.T) {
	d := domain.NewDate(2024, time.June, 10)
	plans := []*domain.ProductionPlan{
		plan("ontrack", "A", 9, d),
		plan("soon", "A", 2, d),
		plan("late-1", "A", -1, d),
		plan("today", "A", 0, d),
		plan("late-5", "A", -5, d),
	}
	UrgencySort(plans)
	assert.Equal(t, []string{"late-5", "late-1", "today", "soon", "ontrack"}, ids(plans))
}

func TestUrgencySort_TieBreakers(t *testing.T) {
	early := domain.NewDate(2024, time.June, 1)
	late := domain.NewDate(2024, time.June, 5)
	plans := []*domain.ProductionPlan{
		plan("no-entry", "A", 4, domain.Date{}),
		plan("b-late", "B", 4, late),
		plan("z-early", "Z", 4, early),
		plan("a-late-2", "A", 4, late),
		plan("a-late-1", "A", 4, late),
	}
	UrgencySort(plans)
	assert.Equal(t, []string{"z-early", "a-late-1", "a-late-2", "b-late", "no-entry"}, ids(plans))
}

func TestStatusPriority(t *testing.T) {
	assert.Less(t, StatusPriority(domain.StatusLate), StatusPriority(domain.StatusDueToday))
	assert.Less(t, StatusPriority(domain.StatusDueToday), StatusPriority(domain.StatusDueSoon))
	assert.Less(t, StatusPriority(domain.StatusDueSoon), StatusPriority(domain.StatusOnTrack))
}
