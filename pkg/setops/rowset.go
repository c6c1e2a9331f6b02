package setops

import (
	"tabkit/pkg/dataset"
	"tabkit/pkg/primitives"
)

// RowSet provides a hash-based set abstraction for whole rows.
// Hash collisions are handled by storing the actual rows in each
// bucket for exact comparison. Membership uses the set-operation
// equality rule (missing equals missing), so the structure must not
// be used for join keys.
type RowSet struct {
	buckets map[primitives.HashCode][]dataset.Row
	size    int
}

// NewRowSet creates an empty row set.
func NewRowSet() *RowSet {
	return &RowSet{
		buckets: make(map[primitives.HashCode][]dataset.Row),
	}
}

// Add inserts a row into the set.
// Returns true if the row was not present before.
func (rs *RowSet) Add(row dataset.Row) bool {
	hash := row.Hash()

	for _, existing := range rs.buckets[hash] {
		if existing.Equivalent(row) {
			return false
		}
	}

	rs.buckets[hash] = append(rs.buckets[hash], row)
	rs.size++
	return true
}

// Contains checks if an equivalent row exists in the set.
func (rs *RowSet) Contains(row dataset.Row) bool {
	for _, existing := range rs.buckets[row.Hash()] {
		if existing.Equivalent(row) {
			return true
		}
	}
	return false
}

// Size returns the number of distinct rows in the set.
func (rs *RowSet) Size() int {
	return rs.size
}
