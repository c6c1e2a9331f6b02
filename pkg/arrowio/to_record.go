package arrowio

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"tabkit/pkg/dataset"
	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

// ToRecord builds an Arrow record batch from a dataset. Each column's
// Arrow type is inferred from its first non-missing value; missing
// cells become nulls. A column holding more than one value type is
// rejected. Columns that are entirely missing are emitted as all-null
// string columns.
//
// The caller owns the returned record and must Release it.
func ToRecord(d *dataset.Dataset, mem memory.Allocator) (arrow.Record, error) {
	if d == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	numCols := d.Schema().NumColumns()
	fields := make([]arrow.Field, numCols)
	colTypes := make([]types.Type, numCols)

	for c := 0; c < numCols; c++ {
		name, _ := d.Schema().Name(primitives.ColumnID(c)) // #nosec G115
		t, err := inferColumnType(d, primitives.ColumnID(c))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		colTypes[c] = t

		arrowType, err := arrowTypeFor(t)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		fields[c] = arrow.Field{Name: name, Type: arrowType, Nullable: true}
	}

	builder := array.NewRecordBuilder(mem, arrow.NewSchema(fields, nil))
	defer builder.Release()

	for r := 0; r < d.NumRows(); r++ {
		row, _ := d.Row(r)
		for c := 0; c < numCols; c++ {
			if err := appendField(builder.Field(c), colTypes[c], row[c]); err != nil {
				name, _ := d.Schema().Name(primitives.ColumnID(c)) // #nosec G115
				return nil, fmt.Errorf("column %q row %d: %w", name, r, err)
			}
		}
	}

	return builder.NewRecord(), nil
}

// inferColumnType scans a column for its first non-missing value.
// Entirely missing columns default to string.
func inferColumnType(d *dataset.Dataset, col primitives.ColumnID) (types.Type, error) {
	for r := 0; r < d.NumRows(); r++ {
		field, err := d.Field(r, col)
		if err != nil {
			return 0, err
		}
		if !types.IsMissing(field) {
			return field.Type(), nil
		}
	}
	return types.StringType, nil
}

func arrowTypeFor(t types.Type) (arrow.DataType, error) {
	switch t {
	case types.IntType:
		return arrow.PrimitiveTypes.Int64, nil
	case types.FloatType:
		return arrow.PrimitiveTypes.Float64, nil
	case types.StringType:
		return arrow.BinaryTypes.String, nil
	case types.BoolType:
		return arrow.FixedWidthTypes.Boolean, nil
	default:
		return nil, fmt.Errorf("no arrow mapping for %s", t)
	}
}

// appendField writes one cell into the column builder, enforcing that
// every non-missing value matches the inferred column type.
func appendField(b array.Builder, colType types.Type, field types.Field) error {
	if types.IsMissing(field) {
		b.AppendNull()
		return nil
	}

	if field.Type() != colType {
		return fmt.Errorf("mixed value types: column inferred as %s, found %s",
			colType, field.Type())
	}

	switch f := field.(type) {
	case *types.IntField:
		b.(*array.Int64Builder).Append(f.Value)
	case *types.Float64Field:
		b.(*array.Float64Builder).Append(f.Value)
	case *types.StringField:
		b.(*array.StringBuilder).Append(f.Value)
	case *types.BoolField:
		b.(*array.BooleanBuilder).Append(f.Value)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}
