package dataset

import (
	"strings"

	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

// Row is a single record: one field per schema column, in schema order.
type Row []types.Field

// Hash computes a hash over all fields of the row, folding field hashes
// in column order. Rows that are Equivalent always hash alike, because
// the missing marker hashes to a fixed constant.
func (r Row) Hash() primitives.HashCode {
	var hash primitives.HashCode
	for _, field := range r {
		hash = primitives.CombineHash(hash, field.Hash())
	}
	return hash
}

// Equivalent compares two rows field by field using the set-operation
// equality rule: missing values in the same position compare equal.
// This is used for whole-row deduplication, not for join keys.
func (r Row) Equivalent(other Row) bool {
	if len(r) != len(other) {
		return false
	}

	for i, field := range r {
		if !types.Equivalent(field, other[i]) {
			return false
		}
	}
	return true
}

// Clone creates a shallow copy of this row. Field values are immutable,
// so sharing them is safe; only the slice itself is duplicated.
func (r Row) Clone() Row {
	rowCopy := make(Row, len(r))
	copy(rowCopy, r)
	return rowCopy
}

// Reorder returns a new row with fields rearranged by the given
// permutation: result[i] = r[perm[i]].
func (r Row) Reorder(perm []primitives.ColumnID) Row {
	reordered := make(Row, len(perm))
	for i, src := range perm {
		reordered[i] = r[src]
	}
	return reordered
}

// String returns a string representation of this row.
// Format: field1\tfield2\t...\tfieldN
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, field := range r {
		if field != nil {
			parts[i] = field.String()
		} else {
			parts[i] = "NA"
		}
	}
	return strings.Join(parts, "\t")
}
