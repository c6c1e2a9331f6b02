// Package dataset defines the tabular data model shared by every engine
// in tabkit: an ordered Schema of unique column names, dynamically typed
// Rows aligned to that schema, and an immutable Dataset over both.
//
// Datasets are constructed once, via Builder or NewDataset, and never
// mutated afterwards. The join, set-operation, and resampling engines
// all consume datasets read-only and allocate fresh outputs, so a single
// dataset can safely back any number of concurrent operations.
package dataset
