package services

import "delivery-time-service/internal/domain"

// ApplyFilters returns the records satisfying every active predicate of spec,
// preserving input order.
//
// The result is always a fresh slice so callers may reorder it without touching
// the shared dataset. An empty result is valid.
func ApplyFilters(records []domain.DeliveryRecord, spec domain.FilterSpec) []domain.DeliveryRecord {
	if spec.IsEmpty() {
		return append(make([]domain.DeliveryRecord, 0, len(records)), records...)
	}

	out := make([]domain.DeliveryRecord, 0, len(records))
	for _, r := range records {
		if spec.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
