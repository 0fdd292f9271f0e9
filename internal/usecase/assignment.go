package usecase

import (
	"autofixpro/internal/domain/entities"
)

// SelectTechnician picks the least-loaded active technician for a new order.
//
// Pure selection over the provided loads: inactive technicians are skipped,
// ties break in favor of the first encountered minimum, and ok is false when
// no active technician exists (the order then proceeds unassigned, not an
// error). The caller persists the resulting assignment.
//
// Known race: loads are read live at assignment time with no lock, so two
// concurrent creates can both pick the same "least loaded" technician. For a
// single-shop deployment the contention is low enough that this is accepted.
func SelectTechnician(loads []entities.TechnicianLoad) (entities.Technician, bool) {
	var best entities.Technician
	bestCount := -1
	for _, l := range loads {
		if !l.Technician.Active {
			continue
		}
		if bestCount == -1 || l.OpenOrders < bestCount {
			best = l.Technician
			bestCount = l.OpenOrders
		}
	}
	return best, bestCount != -1
}

// countOpenOrders counts orders that still occupy a technician.
func countOpenOrders(orders []entities.ServiceOrder) int {
	n := 0
	for _, o := range orders {
		if o.State.IsOpen() {
			n++
		}
	}
	return n
}
