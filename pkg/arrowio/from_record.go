package arrowio

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"golang.org/x/sync/errgroup"

	"tabkit/pkg/dataset"
	"tabkit/pkg/types"
)

// FromRecord builds a dataset from an Arrow record batch. Column names
// come from the record's schema; null cells become missing values.
//
// Columns are decoded independently and in parallel; the assembled
// rows are identical regardless of scheduling.
func FromRecord(rec arrow.Record) (*dataset.Dataset, error) {
	if rec == nil {
		return nil, fmt.Errorf("record cannot be nil")
	}

	numCols := int(rec.NumCols())
	if numCols == 0 {
		return nil, fmt.Errorf("record has no columns")
	}

	names := make([]string, numCols)
	for i := 0; i < numCols; i++ {
		names[i] = rec.Schema().Field(i).Name
	}

	schema, err := dataset.NewSchema(names)
	if err != nil {
		return nil, fmt.Errorf("building schema from record: %w", err)
	}

	numRows := int(rec.NumRows())
	columns := make([][]types.Field, numCols)

	var g errgroup.Group
	for i := 0; i < numCols; i++ {
		i := i
		g.Go(func() error {
			fields, err := decodeColumn(rec.Column(i), numRows)
			if err != nil {
				return fmt.Errorf("column %q: %w", names[i], err)
			}
			columns[i] = fields
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]dataset.Row, numRows)
	for r := 0; r < numRows; r++ {
		row := make(dataset.Row, numCols)
		for c := 0; c < numCols; c++ {
			row[c] = columns[c][r]
		}
		rows[r] = row
	}

	return dataset.NewDataset(schema, rows)
}

// decodeColumn converts one Arrow array into field values, mapping
// nulls to the missing marker.
func decodeColumn(col arrow.Array, numRows int) ([]types.Field, error) {
	fields := make([]types.Field, numRows)

	switch col.DataType().ID() {
	case arrow.INT64:
		a := col.(*array.Int64)
		for i := 0; i < numRows; i++ {
			if a.IsNull(i) {
				fields[i] = types.NewMissingField()
			} else {
				fields[i] = types.NewIntField(a.Value(i))
			}
		}
	case arrow.FLOAT64:
		a := col.(*array.Float64)
		for i := 0; i < numRows; i++ {
			if a.IsNull(i) {
				fields[i] = types.NewMissingField()
			} else {
				fields[i] = types.NewFloat64Field(a.Value(i))
			}
		}
	case arrow.STRING:
		a := col.(*array.String)
		for i := 0; i < numRows; i++ {
			if a.IsNull(i) {
				fields[i] = types.NewMissingField()
			} else {
				fields[i] = types.NewStringField(a.Value(i))
			}
		}
	case arrow.BOOL:
		a := col.(*array.Boolean)
		for i := 0; i < numRows; i++ {
			if a.IsNull(i) {
				fields[i] = types.NewMissingField()
			} else {
				fields[i] = types.NewBoolField(a.Value(i))
			}
		}
	default:
		return nil, fmt.Errorf("unsupported arrow type %s", col.DataType())
	}

	return fields, nil
}
