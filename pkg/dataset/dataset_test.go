package dataset

import (
	"testing"

	"tabkit/pkg/primitives"
	"tabkit/pkg/types"
)

func buildSample(t *testing.T) *Dataset {
	t.Helper()
	return NewBuilder(MustSchema("key", "val")).
		AddRow(types.NewIntField(1), types.NewStringField("x1")).
		AddRow(types.NewIntField(2), types.NewStringField("x2")).
		AddRow(types.NewIntField(2), types.NewMissingField()).
		MustBuild()
}

func TestBuilderBuildsDataset(t *testing.T) {
	d := buildSample(t)

	if d.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", d.NumRows())
	}

	f, err := d.FieldByName(1, "val")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f.String() != "x2" {
		t.Errorf("Expected x2, got %s", f.String())
	}

	f, err = d.FieldByName(2, "val")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !types.IsMissing(f) {
		t.Error("Expected missing marker in row 2")
	}
}

func TestBuilderRejectsWrongArity(t *testing.T) {
	_, err := NewBuilder(MustSchema("a", "b")).
		AddRow(types.NewIntField(1)).
		Build()
	if err == nil {
		t.Error("Expected error for row with wrong field count")
	}
}

func TestBuilderRejectsNilField(t *testing.T) {
	_, err := NewBuilder(MustSchema("a")).
		AddRow(nil).
		Build()
	if err == nil {
		t.Error("Expected error for nil field")
	}
}

func TestDatasetRowBounds(t *testing.T) {
	d := buildSample(t)

	if _, err := d.Row(-1); err == nil {
		t.Error("Expected error for negative row index")
	}
	if _, err := d.Row(3); err == nil {
		t.Error("Expected error for row index past end")
	}
}

func TestDatasetFieldByUnknownName(t *testing.T) {
	d := buildSample(t)

	if _, err := d.FieldByName(0, "nope"); err == nil {
		t.Error("Expected error for unknown column name")
	}
}

func TestIteratorWalksAllRows(t *testing.T) {
	d := buildSample(t)
	it := d.Iterator()

	count := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		count++
	}

	if count != d.NumRows() {
		t.Errorf("Expected %d rows, iterated %d", d.NumRows(), count)
	}

	if _, err := it.Next(); err == nil {
		t.Error("Expected error after exhausting iterator")
	}

	it.Rewind()
	if it.Remaining() != d.NumRows() {
		t.Errorf("Expected %d remaining after rewind, got %d", d.NumRows(), it.Remaining())
	}
}

func TestRowEquivalent(t *testing.T) {
	na := types.NewMissingField()

	r1 := Row{types.NewIntField(1), na}
	r2 := Row{types.NewIntField(1), na}
	r3 := Row{types.NewIntField(2), na}

	if !r1.Equivalent(r2) {
		t.Error("Expected rows with matching missing cells to be equivalent")
	}
	if r1.Equivalent(r3) {
		t.Error("Expected rows with different values to not be equivalent")
	}
	if r1.Hash() != r2.Hash() {
		t.Error("Expected equivalent rows to hash alike")
	}
}

func TestRowReorder(t *testing.T) {
	r := Row{types.NewIntField(1), types.NewStringField("a"), types.NewBoolField(true)}
	out := r.Reorder([]primitives.ColumnID{2, 0, 1})

	if out[0].String() != "true" || out[1].String() != "1" || out[2].String() != "a" {
		t.Errorf("Unexpected reordered row: %s", out)
	}
}
