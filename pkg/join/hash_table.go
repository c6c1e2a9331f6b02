package join

import (
	"tabkit/pkg/dataset"
	"tabkit/pkg/primitives"
)

// keyTable is the build side of the hash join: it maps key values to
// the right-dataset row indices carrying them, preserving right-row
// order within each key group. Hash collisions are handled by storing
// the extracted key fields for exact comparison.
type keyTable struct {
	buckets map[primitives.HashCode][]*keyGroup
}

// keyGroup collects all right rows sharing one exact key value.
type keyGroup struct {
	key     dataset.Row // Extracted key fields (never missing)
	rowIdxs []int       // Right row indices, in row order
}

// buildKeyTable reads every right row and indexes it by its key value.
// Rows with a missing key field are skipped entirely: they can never
// match, so they only matter to right/full joins, which recover them
// through the matched-row bitmap rather than the table.
func buildKeyTable(right *dataset.Dataset, cols []primitives.ColumnID) *keyTable {
	kt := &keyTable{
		buckets: make(map[primitives.HashCode][]*keyGroup),
	}

	for i := 0; i < right.NumRows(); i++ {
		row, _ := right.Row(i)
		key, ok := extractKey(row, cols)
		if !ok {
			continue
		}
		kt.add(key, i)
	}

	return kt
}

// add appends a row index to the group holding the exact key, creating
// the group on first sight of the key.
func (kt *keyTable) add(key dataset.Row, rowIdx int) {
	hash := key.Hash()

	for _, group := range kt.buckets[hash] {
		if keysEqual(group.key, key) {
			group.rowIdxs = append(group.rowIdxs, rowIdx)
			return
		}
	}

	kt.buckets[hash] = append(kt.buckets[hash], &keyGroup{
		key:     key,
		rowIdxs: []int{rowIdx},
	})
}

// lookup returns the right row indices matching the given key, in
// right-row order. Returns nil if no right row carries the key.
func (kt *keyTable) lookup(key dataset.Row) []int {
	for _, group := range kt.buckets[key.Hash()] {
		if keysEqual(group.key, key) {
			return group.rowIdxs
		}
	}
	return nil
}

// contains reports whether at least one right row carries the key.
func (kt *keyTable) contains(key dataset.Row) bool {
	return kt.lookup(key) != nil
}
