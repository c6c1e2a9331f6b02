package dataset

import (
	"fmt"
	"strings"

	"tabkit/pkg/primitives"
)

// Schema describes the column layout of a dataset: an ordered list of
// unique column names. Column order matters for display and for the
// positional layout of rows, but not for matching schemas across
// datasets (see SameColumns).
type Schema struct {
	names []string
	index map[string]primitives.ColumnID
}

// NewSchema creates a schema from the given column names.
//
// Returns an error if no names are given or if any name appears twice.
func NewSchema(names []string) (*Schema, error) {
	if len(names) < 1 {
		return nil, fmt.Errorf("must provide at least one column name")
	}

	namesCopy := make([]string, len(names))
	copy(namesCopy, names)

	index := make(map[string]primitives.ColumnID, len(names))
	for i, name := range namesCopy {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		index[name] = primitives.ColumnID(i) // #nosec G115
	}

	return &Schema{
		names: namesCopy,
		index: index,
	}, nil
}

// MustSchema creates a schema or panics (use only when errors are impossible)
func MustSchema(names ...string) *Schema {
	s, err := NewSchema(names)
	if err != nil {
		panic(fmt.Sprintf("schema error: %v", err))
	}
	return s
}

// NumColumns returns the number of columns in this schema.
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// Name returns the name of the ith column.
func (s *Schema) Name(i primitives.ColumnID) (string, error) {
	if int(i) >= len(s.names) {
		return "", fmt.Errorf("column index %d out of bounds [0, %d)", i, len(s.names))
	}
	return s.names[i], nil
}

// Names returns a copy of the column names in schema order.
func (s *Schema) Names() []string {
	namesCopy := make([]string, len(s.names))
	copy(namesCopy, s.names)
	return namesCopy
}

// Index returns the position of the named column, if present.
func (s *Schema) Index(name string) (primitives.ColumnID, bool) {
	id, ok := s.index[name]
	if !ok {
		return primitives.InvalidColumnID, false
	}
	return id, true
}

// HasColumn reports whether the named column exists in this schema.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Equals checks if two schemas have the same column names in the same order.
func (s *Schema) Equals(other *Schema) bool {
	if other == nil {
		return false
	}

	if len(s.names) != len(other.names) {
		return false
	}

	for i, name := range s.names {
		if name != other.names[i] {
			return false
		}
	}
	return true
}

// SameColumns checks if two schemas have the same column set, ignoring
// order. This is the compatibility rule for set operations.
func (s *Schema) SameColumns(other *Schema) bool {
	if other == nil {
		return false
	}

	if len(s.names) != len(other.names) {
		return false
	}

	for _, name := range s.names {
		if !other.HasColumn(name) {
			return false
		}
	}
	return true
}

// Permutation maps each of this schema's column positions to the
// position of the same-named column in other. Both schemas must contain
// the same column set.
func (s *Schema) Permutation(other *Schema) ([]primitives.ColumnID, error) {
	if !s.SameColumns(other) {
		return nil, fmt.Errorf("schemas do not share a column set: [%s] vs [%s]",
			strings.Join(s.names, ", "), strings.Join(other.names, ", "))
	}

	perm := make([]primitives.ColumnID, len(s.names))
	for i, name := range s.names {
		id, _ := other.Index(name)
		perm[i] = id
	}
	return perm, nil
}

// String returns a string representation of this schema.
// Format: "(col1, col2, ...)"
func (s *Schema) String() string {
	return "(" + strings.Join(s.names, ", ") + ")"
}
