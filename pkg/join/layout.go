package join

import (
	"fmt"

	"tabkit/pkg/dataset"
	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

// Suffixes appended to non-key columns whose names collide across the
// two inputs. Collisions are always disambiguated, never dropped.
const (
	leftSuffix  = ".x"
	rightSuffix = ".y"
)

// outputLayout describes the column arrangement of a mutating join:
// key columns first (left name, left value when present), then the
// remaining left columns, then the remaining right columns.
type outputLayout struct {
	schema     *dataset.Schema
	leftKey    []primitives.ColumnID // Key positions in the left dataset
	rightKey   []primitives.ColumnID // Key positions in the right dataset
	leftOther  []primitives.ColumnID // Non-key left columns, schema order
	rightOther []primitives.ColumnID // Non-key right columns, schema order
}

func buildLayout(left, right *dataset.Dataset, rk *resolvedKeys) (*outputLayout, error) {
	layout := &outputLayout{
		leftKey:    rk.left,
		rightKey:   rk.right,
		leftOther:  otherColumns(left.Schema(), rk.left),
		rightOther: otherColumns(right.Schema(), rk.right),
	}

	keyNames := columnNames(left.Schema(), layout.leftKey)
	leftNames := columnNames(left.Schema(), layout.leftOther)
	rightNames := columnNames(right.Schema(), layout.rightOther)

	suffixCollisions(keyNames, leftNames, rightNames)

	all := make([]string, 0, len(keyNames)+len(leftNames)+len(rightNames))
	all = append(all, keyNames...)
	all = append(all, leftNames...)
	all = append(all, rightNames...)

	schema, err := dataset.NewSchema(all)
	if err != nil {
		return nil, fmt.Errorf("building join output schema: %w", err)
	}

	layout.schema = schema
	return layout, nil
}

// otherColumns returns the schema positions not claimed by keys, in
// schema order.
func otherColumns(s *dataset.Schema, keys []primitives.ColumnID) []primitives.ColumnID {
	keySet := make(map[primitives.ColumnID]bool, len(keys))
	for _, id := range keys {
		keySet[id] = true
	}

	var other []primitives.ColumnID
	for i := 0; i < s.NumColumns(); i++ {
		id := primitives.ColumnID(i) // #nosec G115
		if !keySet[id] {
			other = append(other, id)
		}
	}
	return other
}

func columnNames(s *dataset.Schema, cols []primitives.ColumnID) []string {
	names := make([]string, len(cols))
	for i, id := range cols {
		names[i], _ = s.Name(id)
	}
	return names
}

// suffixCollisions renames colliding non-key columns in place: a left
// non-key column sharing a name with a right non-key column gets the
// left suffix, and a right non-key column sharing a name with any
// left-side output column (key or non-key) gets the right suffix. Key
// columns keep the bare left name.
func suffixCollisions(keyNames, leftNames, rightNames []string) {
	leftSide := make(map[string]bool, len(keyNames)+len(leftNames))
	for _, name := range keyNames {
		leftSide[name] = true
	}
	for _, name := range leftNames {
		leftSide[name] = true
	}

	rightSet := make(map[string]bool, len(rightNames))
	for _, name := range rightNames {
		rightSet[name] = true
	}

	for i, name := range leftNames {
		if rightSet[name] {
			leftNames[i] = name + leftSuffix
		}
	}

	for i, name := range rightNames {
		if leftSide[name] {
			rightNames[i] = name + rightSuffix
		}
	}
}

// combined builds an output row from a matching left/right pair. Key
// values are taken from the left side.
func (l *outputLayout) combined(leftRow, rightRow dataset.Row) dataset.Row {
	row := make(dataset.Row, 0, l.schema.NumColumns())
	for _, id := range l.leftKey {
		row = append(row, leftRow[id])
	}
	for _, id := range l.leftOther {
		row = append(row, leftRow[id])
	}
	for _, id := range l.rightOther {
		row = append(row, rightRow[id])
	}
	return row
}

// leftPadded builds an output row for an unmatched left row, filling
// the right columns with missing markers.
func (l *outputLayout) leftPadded(leftRow dataset.Row) dataset.Row {
	row := make(dataset.Row, 0, l.schema.NumColumns())
	for _, id := range l.leftKey {
		row = append(row, leftRow[id])
	}
	for _, id := range l.leftOther {
		row = append(row, leftRow[id])
	}
	for range l.rightOther {
		row = append(row, types.NewMissingField())
	}
	return row
}

// rightPadded builds an output row for an unmatched right row: key
// values come from the right side, left columns are missing.
func (l *outputLayout) rightPadded(rightRow dataset.Row) dataset.Row {
	row := make(dataset.Row, 0, l.schema.NumColumns())
	for _, id := range l.rightKey {
		row = append(row, rightRow[id])
	}
	for range l.leftOther {
		row = append(row, types.NewMissingField())
	}
	for _, id := range l.rightOther {
		row = append(row, rightRow[id])
	}
	return row
}
