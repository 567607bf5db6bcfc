package domain

import "sort"

// Violation messages, one per breached side of the [0, 1,000,000] boundary.
const (
	ViolationMinBoundary = "Record amount constraints minimum boundary (0)"
	ViolationMaxBoundary = "Record amount constraints maximum boundary (1,000,000)"
)

// BoundaryError reports every boundary violation a batch would cause,
// keyed by user. It is only raised once all users in the batch have been
// checked, so callers always see the complete set in one round trip.
type BoundaryError struct {
	Violations map[string][]string
}

func (e *BoundaryError) Error() string {
	return "credit boundary violation (0 - 1,000,000)"
}

// Users returns the violating users in sorted order.
func (e *BoundaryError) Users() []string {
	users := make([]string, 0, len(e.Violations))
	for user := range e.Violations {
		users = append(users, user)
	}

	sort.Strings(users)

	return users
}
