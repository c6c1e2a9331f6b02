package setops

import (
	"errors"
	"testing"

	"tabkit/pkg/dataset"
	"tabkit/pkg/types"
)

// buildDF1 returns {x,y} = (1,1),(2,1).
func buildDF1() *dataset.Dataset {
	return dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), types.NewIntField(1)).
		AddRow(types.NewIntField(2), types.NewIntField(1)).
		MustBuild()
}

// buildDF2 returns {x,y} = (1,1),(1,2).
func buildDF2() *dataset.Dataset {
	return dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), types.NewIntField(1)).
		AddRow(types.NewIntField(1), types.NewIntField(2)).
		MustBuild()
}

func rowValues(t *testing.T, d *dataset.Dataset, row int) (string, string) {
	t.Helper()
	fx, err := d.FieldByName(row, "x")
	if err != nil {
		t.Fatalf("FieldByName(%d, x): %v", row, err)
	}
	fy, err := d.FieldByName(row, "y")
	if err != nil {
		t.Fatalf("FieldByName(%d, y): %v", row, err)
	}
	return fx.String(), fy.String()
}

func TestIntersect(t *testing.T) {
	result, err := Intersect(buildDF1(), buildDF2())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.NumRows() != 1 {
		t.Fatalf("Expected 1 row, got %d", result.NumRows())
	}
	if x, y := rowValues(t, result, 0); x != "1" || y != "1" {
		t.Errorf("Expected (1,1), got (%s,%s)", x, y)
	}
}

func TestUnionDeduplicates(t *testing.T) {
	result, err := Union(buildDF1(), buildDF2())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// (1,1) appears in both inputs and must collapse to one row.
	if result.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", result.NumRows())
	}

	expected := [][2]string{{"1", "1"}, {"2", "1"}, {"1", "2"}}
	for i, exp := range expected {
		if x, y := rowValues(t, result, i); x != exp[0] || y != exp[1] {
			t.Errorf("Row %d = (%s,%s), expected (%s,%s)", i, x, y, exp[0], exp[1])
		}
	}
}

func TestDifferenceBothDirections(t *testing.T) {
	diff12, err := Difference(buildDF1(), buildDF2())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff12.NumRows() != 1 {
		t.Fatalf("Expected 1 row, got %d", diff12.NumRows())
	}
	if x, y := rowValues(t, diff12, 0); x != "2" || y != "1" {
		t.Errorf("Expected (2,1), got (%s,%s)", x, y)
	}

	diff21, err := Difference(buildDF2(), buildDF1())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff21.NumRows() != 1 {
		t.Fatalf("Expected 1 row, got %d", diff21.NumRows())
	}
	if x, y := rowValues(t, diff21, 0); x != "1" || y != "2" {
		t.Errorf("Expected (1,2), got (%s,%s)", x, y)
	}
}

func TestIntersectIsCommutativeOnRowSets(t *testing.T) {
	ab, err := Intersect(buildDF1(), buildDF2())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ba, err := Intersect(buildDF2(), buildDF1())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if ab.NumRows() != ba.NumRows() {
		t.Fatalf("Expected same cardinality, got %d and %d", ab.NumRows(), ba.NumRows())
	}

	set := NewRowSet()
	for i := 0; i < ab.NumRows(); i++ {
		row, _ := ab.Row(i)
		set.Add(row)
	}
	for i := 0; i < ba.NumRows(); i++ {
		row, _ := ba.Row(i)
		if !set.Contains(row) {
			t.Errorf("Row %d of reversed intersect not found in forward result", i)
		}
	}
}

func TestUnionWithSelfDeduplicates(t *testing.T) {
	d := dataset.NewBuilder(dataset.MustSchema("x")).
		AddRow(types.NewIntField(1)).
		AddRow(types.NewIntField(1)).
		AddRow(types.NewIntField(2)).
		MustBuild()

	result, err := Union(d, d)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.NumRows() != 2 {
		t.Errorf("Expected union(a,a) to equal dedup(a) with 2 rows, got %d", result.NumRows())
	}
}

func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	result, err := Difference(buildDF1(), buildDF1())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.NumRows() != 0 {
		t.Errorf("Expected empty difference, got %d rows", result.NumRows())
	}
}

func TestSetOpsAlignColumnOrder(t *testing.T) {
	// Same column set, different order: rows must still compare.
	a := dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), types.NewIntField(2)).
		MustBuild()
	b := dataset.NewBuilder(dataset.MustSchema("y", "x")).
		AddRow(types.NewIntField(2), types.NewIntField(1)).
		MustBuild()

	result, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.NumRows() != 1 {
		t.Errorf("Expected reordered rows to intersect, got %d rows", result.NumRows())
	}
}

func TestMissingValuesDeduplicateInSetOps(t *testing.T) {
	na := types.NewMissingField()
	a := dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), na).
		MustBuild()
	b := dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), na).
		MustBuild()

	// Unlike join keys, two missing values in the same column compare
	// equal for whole-row set semantics.
	inter, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if inter.NumRows() != 1 {
		t.Errorf("Expected NA rows to intersect, got %d rows", inter.NumRows())
	}

	union, err := Union(a, b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if union.NumRows() != 1 {
		t.Errorf("Expected NA rows to deduplicate in union, got %d rows", union.NumRows())
	}
}

func TestSchemaMismatchFails(t *testing.T) {
	a := dataset.NewBuilder(dataset.MustSchema("x", "y")).
		AddRow(types.NewIntField(1), types.NewIntField(2)).
		MustBuild()
	b := dataset.NewBuilder(dataset.MustSchema("x", "z")).
		AddRow(types.NewIntField(1), types.NewIntField(2)).
		MustBuild()

	_, err := Intersect(a, b)
	if err == nil {
		t.Fatal("Expected SchemaMismatchError")
	}

	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected SchemaMismatchError, got %T: %v", err, err)
	}
}

func TestRowSetCollisionHandling(t *testing.T) {
	rs := NewRowSet()

	r1 := dataset.Row{types.NewIntField(1), types.NewIntField(2)}
	r2 := dataset.Row{types.NewIntField(2), types.NewIntField(1)}
	r3 := dataset.Row{types.NewIntField(1), types.NewIntField(2)} // duplicate of r1

	if !rs.Add(r1) {
		t.Error("First row should be added")
	}
	if !rs.Add(r2) {
		t.Error("Second row should be added")
	}
	if rs.Add(r3) {
		t.Error("Duplicate row should not be added")
	}

	if rs.Size() != 2 {
		t.Errorf("Expected size 2, got %d", rs.Size())
	}
	if !rs.Contains(r3) {
		t.Error("Set should contain duplicate of first row")
	}
}
