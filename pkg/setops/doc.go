// Package setops implements set operations over whole rows: intersect,
// union, and difference, all with set semantics (duplicates collapse).
//
// Inputs must share a column set; column order may differ, and the
// right dataset's rows are realigned to the left schema before
// comparison. Row equality here differs from join-key matching in one
// deliberate way: two missing values in the same column compare equal,
// so otherwise-identical rows containing NA deduplicate as one.
//
// Output rows appear in first-occurrence order, scanning the left
// dataset fully and then the right.
package setops
