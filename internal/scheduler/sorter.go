package scheduler

import (
	"sort"

	"github.com/alexanderramin/prodplan/internal/domain"
)

// StatusPriority returns a sort priority (lower = more urgent).
func StatusPriority(b domain.StatusBucket) int {
	switch b {
	case domain.StatusLate:
		return 0
	case domain.StatusDueToday:
		return 1
	case domain.StatusDueSoon:
		return 2
	default:
		return 3
	}
}

// UrgencySort orders plans most urgent first by the deterministic rules:
// 1. Status: late > due today > due soon > on track
// 2. Days until production: fewest first
// 3. Production entry deadline: earliest first (unset last)
// 4. Customer: lexical ascending
// 5. ID: lexical ascending
//
// The sort is stable, so plans equal on every key keep their input order.
func UrgencySort(plans []*domain.ProductionPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]

		// 1. Status priority
		pa := StatusPriority(ClassifyStatus(a.DaysUntilProduction).Bucket)
		pb := StatusPriority(ClassifyStatus(b.DaysUntilProduction).Bucket)
		if pa != pb {
			return pa < pb
		}

		// 2. Days until production
		if a.DaysUntilProduction != b.DaysUntilProduction {
			return a.DaysUntilProduction < b.DaysUntilProduction
		}

		// 3. Entry deadline (earliest first, unset last)
		ea, eb := a.ProductionEntryDeadline, b.ProductionEntryDeadline
		if ea.IsZero() != eb.IsZero() {
			return !ea.IsZero()
		}
		if !ea.Equal(eb) {
			return ea.Before(eb)
		}

		// 4. Customer (lexical)
		if a.Customer != b.Customer {
			return a.Customer < b.Customer
		}

		// 5. ID (lexical)
		return a.ID < b.ID
	})
}
