package primitives

import "math"

// HashCode represents a hash value (e.g., for join keys or whole rows).
// It is typically computed for fast comparisons or lookups.
type HashCode uint64

// ColumnID identifies a column within a dataset schema
type ColumnID uint32

// Sentinel values for invalid/unset identifiers
const (
	// InvalidColumnID represents an invalid or unset column ID.
	// Used for: failed column lookups, uninitialized key mappings.
	InvalidColumnID ColumnID = math.MaxUint32
)
