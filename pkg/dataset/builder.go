package dataset

import (
	"fmt"

	"tabkit/pkg/types"
)

// Builder provides a fluent interface for constructing datasets
type Builder struct {
	schema *Schema
	rows   []Row
	err    error
}

// NewBuilder creates a new dataset builder with the given schema
func NewBuilder(schema *Schema) *Builder {
	return &Builder{
		schema: schema,
	}
}

// AddRow appends a row built from the given fields, one per column in
// schema order. Missing cells are expressed with types.NewMissingField().
func (b *Builder) AddRow(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}

	if len(fields) != b.schema.NumColumns() {
		b.err = fmt.Errorf("row %d: expected %d fields, got %d",
			len(b.rows), b.schema.NumColumns(), len(fields))
		return b
	}

	for i, field := range fields {
		if field == nil {
			b.err = fmt.Errorf("row %d: field %d is nil", len(b.rows), i)
			return b
		}
	}

	row := make(Row, len(fields))
	copy(row, fields)
	b.rows = append(b.rows, row)
	return b
}

// Build returns the constructed dataset or an error if any operation failed
func (b *Builder) Build() (*Dataset, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewDataset(b.schema, b.rows)
}

// MustBuild returns the dataset or panics on error (use only when errors are impossible)
func (b *Builder) MustBuild() *Dataset {
	d, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("dataset builder error: %v", err))
	}
	return d
}
