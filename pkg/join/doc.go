// Package join implements relational joins between two datasets.
//
// The engine is a hash join: it builds a table over the right dataset's
// key values, then probes it with each left row. All six modes share the
// same matching rule — every key pair must compare exactly equal, and a
// missing value never matches anything, including another missing value.
//
// Mutating joins (inner, left, right, full) combine columns from both
// sides and emit the full n×m Cartesian product within each matching key
// group. Filtering joins (semi, anti) only decide which left rows
// survive, emit each at most once, and keep the left schema untouched.
//
// Output order is left-row-major: left rows appear in their original
// order, and a left row's matches appear in right-row order. Right and
// full joins append unmatched right rows after that, in right-row order.
package join
