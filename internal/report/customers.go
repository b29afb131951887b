package report

import "github.com/Miguelll86/customer-segmentation/internal/model"

// Pagination caps for the customers listing.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// FilterBySegment returns the customers of one segment, or all of them when
// seg is nil. Source order is preserved.
func FilterBySegment(a *model.Analysis, seg *model.Segment) []model.SegmentedCustomer {
	if seg == nil {
		return a.Customers
	}
	out := make([]model.SegmentedCustomer, 0)
	for _, c := range a.Customers {
		if c.Segment == *seg {
			out = append(out, c)
		}
	}
	return out
}

// Page slices a customer list with clamped skip/limit semantics.
func Page(customers []model.SegmentedCustomer, skip, limit int) []model.SegmentedCustomer {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if skip >= len(customers) {
		return []model.SegmentedCustomer{}
	}
	end := skip + limit
	if end > len(customers) {
		end = len(customers)
	}
	return customers[skip:end]
}
