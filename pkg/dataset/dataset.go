package dataset

import (
	"fmt"

	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

// Dataset is an immutable, ordered collection of rows sharing one
// schema. Operations over datasets (joins, set operations, resampling)
// always allocate fresh outputs; a dataset's row count and column set
// never change after construction.
type Dataset struct {
	schema *Schema
	rows   []Row
}

// NewDataset creates a dataset over the given rows. The row slice is
// copied; the rows themselves are adopted as-is and must not be
// modified by the caller afterwards.
//
// Returns an error if any row's width does not match the schema.
func NewDataset(schema *Schema, rows []Row) (*Dataset, error) {
	if schema == nil {
		return nil, fmt.Errorf("dataset schema cannot be nil")
	}

	rowsCopy := make([]Row, len(rows))
	for i, row := range rows {
		if len(row) != schema.NumColumns() {
			return nil, fmt.Errorf("row %d has %d fields, schema has %d columns",
				i, len(row), schema.NumColumns())
		}
		rowsCopy[i] = row
	}

	return &Dataset{
		schema: schema,
		rows:   rowsCopy,
	}, nil
}

// Schema returns the column layout of this dataset.
func (d *Dataset) Schema() *Schema {
	return d.schema
}

// NumRows returns the number of rows in this dataset.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// Row returns the ith row. The returned row is shared with the dataset
// and must not be modified.
func (d *Dataset) Row(i int) (Row, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("row index %d out of bounds [0, %d)", i, len(d.rows))
	}
	return d.rows[i], nil
}

// Field returns the value at the given row and column position.
func (d *Dataset) Field(row int, col primitives.ColumnID) (types.Field, error) {
	r, err := d.Row(row)
	if err != nil {
		return nil, err
	}

	if int(col) >= len(r) {
		return nil, fmt.Errorf("column index %d out of bounds [0, %d)", col, len(r))
	}
	return r[col], nil
}

// FieldByName returns the value at the given row in the named column.
func (d *Dataset) FieldByName(row int, name string) (types.Field, error) {
	col, ok := d.schema.Index(name)
	if !ok {
		return nil, fmt.Errorf("no column named %q in schema %s", name, d.schema)
	}
	return d.Field(row, col)
}

// Iterator returns a fresh iterator over the dataset's rows.
func (d *Dataset) Iterator() *Iterator {
	return NewIterator(d.rows)
}
