package join

import (
	"fmt"

	"tabkit/pkg/dataset"
)

// Join computes the join of two datasets under the given key
// specification and mode, returning a freshly allocated dataset.
// Neither input is modified.
//
// The algorithm works in two phases:
//  1. Build phase: indexes the right dataset's key values in a hash table
//  2. Probe phase: looks up each left row's key and emits output rows
//
// Time complexity: O(|left| + |right| + |matches|).
//
// Returns KeyError if a named key column is absent from its dataset,
// and EmptyKeyError if the specification resolves to zero columns.
func Join(left, right *dataset.Dataset, keys KeySpec, mode Mode) (*dataset.Dataset, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("join inputs cannot be nil")
	}

	rk, err := keys.resolve(left, right)
	if err != nil {
		return nil, err
	}

	table := buildKeyTable(right, rk.right)

	switch mode {
	case Inner, Left, Right, Full:
		return mutatingJoin(left, right, rk, table, mode)
	case Semi, Anti:
		return filteringJoin(left, rk, table, mode)
	default:
		return nil, fmt.Errorf("unknown join mode %d", int(mode))
	}
}

// NaturalJoin joins on all columns common to both datasets.
//
// Returns EmptyKeyError if the datasets share no column names; the
// zero-key case is never degraded to a Cartesian product.
func NaturalJoin(left, right *dataset.Dataset, mode Mode) (*dataset.Dataset, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("join inputs cannot be nil")
	}

	keys, err := Natural(left, right)
	if err != nil {
		return nil, err
	}
	return Join(left, right, keys, mode)
}

// mutatingJoin handles inner/left/right/full: probe the table with each
// left row in order, emitting the full Cartesian product within each
// matching key group, then recover unmatched right rows when the mode
// preserves the right side.
func mutatingJoin(left, right *dataset.Dataset, rk *resolvedKeys, table *keyTable, mode Mode) (*dataset.Dataset, error) {
	layout, err := buildLayout(left, right, rk)
	if err != nil {
		return nil, err
	}

	keepLeft := mode == Left || mode == Full
	keepRight := mode == Right || mode == Full
	matchedRight := make([]bool, right.NumRows())

	var rows []dataset.Row
	for i := 0; i < left.NumRows(); i++ {
		leftRow, _ := left.Row(i)

		var matches []int
		if key, ok := extractKey(leftRow, rk.left); ok {
			matches = table.lookup(key)
		}

		if len(matches) == 0 {
			if keepLeft {
				rows = append(rows, layout.leftPadded(leftRow))
			}
			continue
		}

		for _, ri := range matches {
			rightRow, _ := right.Row(ri)
			rows = append(rows, layout.combined(leftRow, rightRow))
			matchedRight[ri] = true
		}
	}

	if keepRight {
		for ri, matched := range matchedRight {
			if matched {
				continue
			}
			rightRow, _ := right.Row(ri)
			rows = append(rows, layout.rightPadded(rightRow))
		}
	}

	return dataset.NewDataset(layout.schema, rows)
}

// filteringJoin handles semi/anti: scan left rows in order and keep
// each one at most once, based purely on match existence. The output
// shares the left dataset's schema and rows.
func filteringJoin(left *dataset.Dataset, rk *resolvedKeys, table *keyTable, mode Mode) (*dataset.Dataset, error) {
	wantMatch := mode == Semi

	var rows []dataset.Row
	it := left.Iterator()
	for it.HasNext() {
		row, err := it.Next()
		if err != nil {
			return nil, err
		}

		matched := false
		if key, ok := extractKey(row, rk.left); ok {
			matched = table.contains(key)
		}

		if matched == wantMatch {
			rows = append(rows, row)
		}
	}

	return dataset.NewDataset(left.Schema(), rows)
}
