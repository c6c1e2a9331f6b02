package join

import "fmt"

// KeyError reports a key column named in the specification that is
// absent from its dataset.
type KeyError struct {
	Column string // The missing column name
	Side   string // "left" or "right"
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("join key column %q not found in %s dataset", e.Column, e.Side)
}

// EmptyKeyError reports a key specification that resolved to zero
// columns, e.g. a natural join between datasets with no common columns.
// Joining on no keys is never treated as a Cartesian product; it is
// surfaced as this error instead.
type EmptyKeyError struct{}

func (e *EmptyKeyError) Error() string {
	return "join key specification resolved to zero columns"
}
