package setops

import (
	"fmt"

	"tabkit/pkg/dataset"
)

// Intersect returns each distinct row appearing in both a and b,
// deduplicated, in first-occurrence order over a. The output carries
// a's schema.
func Intersect(a, b *dataset.Dataset) (*dataset.Dataset, error) {
	bRows, err := alignRight(a, b)
	if err != nil {
		return nil, err
	}

	inB := NewRowSet()
	for _, row := range bRows {
		inB.Add(row)
	}

	seen := NewRowSet()
	var rows []dataset.Row
	it := a.Iterator()
	for it.HasNext() {
		row, _ := it.Next()
		if inB.Contains(row) && seen.Add(row) {
			rows = append(rows, row)
		}
	}

	return dataset.NewDataset(a.Schema(), rows)
}

// Union returns each distinct row appearing in a or b (or both),
// deduplicated. Rows appear in first-occurrence order, scanning a
// fully and then b. The output carries a's schema.
func Union(a, b *dataset.Dataset) (*dataset.Dataset, error) {
	bRows, err := alignRight(a, b)
	if err != nil {
		return nil, err
	}

	seen := NewRowSet()
	var rows []dataset.Row

	it := a.Iterator()
	for it.HasNext() {
		row, _ := it.Next()
		if seen.Add(row) {
			rows = append(rows, row)
		}
	}

	for _, row := range bRows {
		if seen.Add(row) {
			rows = append(rows, row)
		}
	}

	return dataset.NewDataset(a.Schema(), rows)
}

// Difference returns each distinct row appearing in a but not in b,
// deduplicated, in first-occurrence order over a. The output carries
// a's schema.
func Difference(a, b *dataset.Dataset) (*dataset.Dataset, error) {
	bRows, err := alignRight(a, b)
	if err != nil {
		return nil, err
	}

	inB := NewRowSet()
	for _, row := range bRows {
		inB.Add(row)
	}

	seen := NewRowSet()
	var rows []dataset.Row
	it := a.Iterator()
	for it.HasNext() {
		row, _ := it.Next()
		if !inB.Contains(row) && seen.Add(row) {
			rows = append(rows, row)
		}
	}

	return dataset.NewDataset(a.Schema(), rows)
}

// alignRight validates that both inputs share a column set and returns
// b's rows reordered into a's column order, so every later comparison
// is positional.
func alignRight(a, b *dataset.Dataset) ([]dataset.Row, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("set operation inputs cannot be nil")
	}

	if !a.Schema().SameColumns(b.Schema()) {
		return nil, &SchemaMismatchError{
			LeftColumns:  a.Schema().Names(),
			RightColumns: b.Schema().Names(),
		}
	}

	perm, err := a.Schema().Permutation(b.Schema())
	if err != nil {
		return nil, err
	}

	rows := make([]dataset.Row, b.NumRows())
	for i := 0; i < b.NumRows(); i++ {
		row, _ := b.Row(i)
		rows[i] = row.Reorder(perm)
	}
	return rows, nil
}
