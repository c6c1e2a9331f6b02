package join

import (
	"tabkit/pkg/dataset"
	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

// KeyPair names one matching column on each side of a join.
type KeyPair struct {
	Left  string // Column name in the left dataset
	Right string // Column name in the right dataset
}

// KeySpec is an ordered list of key pairs. Two rows match iff every
// pair's columns compare exactly equal.
type KeySpec []KeyPair

// Keys creates a key specification joining same-named columns.
func Keys(columns ...string) KeySpec {
	spec := make(KeySpec, len(columns))
	for i, name := range columns {
		spec[i] = KeyPair{Left: name, Right: name}
	}
	return spec
}

// Natural infers a key specification from all columns common to both
// datasets, in left schema order.
//
// Returns EmptyKeyError if the datasets share no column names.
func Natural(left, right *dataset.Dataset) (KeySpec, error) {
	var spec KeySpec
	for _, name := range left.Schema().Names() {
		if right.Schema().HasColumn(name) {
			spec = append(spec, KeyPair{Left: name, Right: name})
		}
	}

	if len(spec) == 0 {
		return nil, &EmptyKeyError{}
	}
	return spec, nil
}

// resolvedKeys holds the column positions a key specification maps to
// on each side.
type resolvedKeys struct {
	left  []primitives.ColumnID
	right []primitives.ColumnID
}

// resolve validates the specification against both schemas and maps
// each pair to column positions.
func (spec KeySpec) resolve(left, right *dataset.Dataset) (*resolvedKeys, error) {
	if len(spec) == 0 {
		return nil, &EmptyKeyError{}
	}

	rk := &resolvedKeys{
		left:  make([]primitives.ColumnID, len(spec)),
		right: make([]primitives.ColumnID, len(spec)),
	}

	for i, pair := range spec {
		leftID, ok := left.Schema().Index(pair.Left)
		if !ok {
			return nil, &KeyError{Column: pair.Left, Side: "left"}
		}

		rightID, ok := right.Schema().Index(pair.Right)
		if !ok {
			return nil, &KeyError{Column: pair.Right, Side: "right"}
		}

		rk.left[i] = leftID
		rk.right[i] = rightID
	}

	return rk, nil
}

// extractKey pulls the key fields out of a row at the given positions.
// Returns false if any key field is missing: such a row can never match.
func extractKey(row dataset.Row, cols []primitives.ColumnID) (dataset.Row, bool) {
	key := make(dataset.Row, len(cols))
	for i, col := range cols {
		field := row[col]
		if field == nil || types.IsMissing(field) {
			return nil, false
		}
		key[i] = field
	}
	return key, true
}

// keysEqual compares two extracted keys field by field with strict
// equality. Extracted keys never contain missing values.
func keysEqual(a, b dataset.Row) bool {
	for i, field := range a {
		if !field.Equals(b[i]) {
			return false
		}
	}
	return true
}
