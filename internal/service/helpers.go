package service

import (
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
)

// clonePlans returns deep-enough copies so callers cannot mutate the store.
func clonePlans(plans []*domain.ProductionPlan) []*domain.ProductionPlan {
	out := make([]*domain.ProductionPlan, len(plans))
	for i, p := range plans {
		out[i] = p.Clone()
	}
	return out
}

// indexByID returns the position of the first plan with the given id, or -1.
func indexByID(plans []*domain.ProductionPlan, id string) int {
	for i, p := range plans {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// resolveIndex finds a plan by exact id, falling back to a unique prefix.
func resolveIndex(plans []*domain.ProductionPlan, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, ErrPlanNotFound
	}
	if i := indexByID(plans, id); i >= 0 {
		return i, nil
	}

	match := -1
	for i, p := range plans {
		if !strings.HasPrefix(p.ID, id) {
			continue
		}
		if match >= 0 && plans[match].ID != p.ID {
			return -1, ErrAmbiguousID
		}
		if match < 0 {
			match = i
		}
	}
	if match < 0 {
		return -1, ErrPlanNotFound
	}
	return match, nil
}

func idSet(plans []*domain.ProductionPlan) map[string]struct{} {
	set := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		if p.ID != "" {
			set[p.ID] = struct{}{}
		}
	}
	return set
}
