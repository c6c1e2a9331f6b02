package dataset

import "fmt"

// Iterator provides sequential access to a dataset's rows.
//
// It is simple and lightweight: just a row slice with a read position,
// immediately ready to use after construction. Not thread-safe; use a
// separate iterator per goroutine.
type Iterator struct {
	rows         []Row // The underlying rows to iterate over
	currentIndex int   // Current position in the rows
}

// NewIterator creates a new iterator over the given rows.
func NewIterator(rows []Row) *Iterator {
	return &Iterator{
		rows:         rows,
		currentIndex: 0,
	}
}

// HasNext checks if there are more rows available.
func (it *Iterator) HasNext() bool {
	return it.currentIndex < len(it.rows)
}

// Next returns the next row and advances the position.
// Returns an error if there are no more rows.
func (it *Iterator) Next() (Row, error) {
	if it.currentIndex >= len(it.rows) {
		return nil, fmt.Errorf("no more rows in iterator")
	}

	row := it.rows[it.currentIndex]
	it.currentIndex++
	return row, nil
}

// Rewind resets the iterator position to the first row.
func (it *Iterator) Rewind() {
	it.currentIndex = 0
}

// Remaining returns the number of rows left to iterate.
func (it *Iterator) Remaining() int {
	if it.currentIndex >= len(it.rows) {
		return 0
	}
	return len(it.rows) - it.currentIndex
}
