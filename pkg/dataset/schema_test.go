package dataset

import (
	"testing"

	"tabkit/pkg/primitives"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema([]string{"key", "val_x"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.NumColumns() != 2 {
		t.Errorf("Expected 2 columns, got %d", s.NumColumns())
	}

	name, err := s.Name(0)
	if err != nil || name != "key" {
		t.Errorf("Expected column 0 to be named key, got %q (err: %v)", name, err)
	}
}

func TestNewSchemaRejectsEmpty(t *testing.T) {
	if _, err := NewSchema(nil); err == nil {
		t.Error("Expected error for empty schema")
	}
}

func TestNewSchemaRejectsDuplicates(t *testing.T) {
	if _, err := NewSchema([]string{"a", "b", "a"}); err == nil {
		t.Error("Expected error for duplicate column name")
	}
}

func TestSchemaIndex(t *testing.T) {
	s := MustSchema("x", "y", "z")

	id, ok := s.Index("y")
	if !ok || id != 1 {
		t.Errorf("Expected index 1 for column y, got %d (ok=%v)", id, ok)
	}

	id, ok = s.Index("w")
	if ok || id != primitives.InvalidColumnID {
		t.Errorf("Expected missing column to return invalid ID, got %d (ok=%v)", id, ok)
	}
}

func TestSchemaSameColumnsIgnoresOrder(t *testing.T) {
	a := MustSchema("x", "y")
	b := MustSchema("y", "x")
	c := MustSchema("x", "z")

	if !a.SameColumns(b) {
		t.Error("Expected schemas with same names in different order to match")
	}
	if a.SameColumns(c) {
		t.Error("Expected schemas with different names to not match")
	}
	if a.Equals(b) {
		t.Error("Expected ordered comparison to distinguish column order")
	}
	if !a.Equals(MustSchema("x", "y")) {
		t.Error("Expected identical schemas to be equal")
	}
}

func TestSchemaPermutation(t *testing.T) {
	a := MustSchema("x", "y", "z")
	b := MustSchema("z", "x", "y")

	perm, err := a.Permutation(b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []primitives.ColumnID{1, 2, 0}
	for i, id := range perm {
		if id != expected[i] {
			t.Errorf("Permutation[%d] = %d, expected %d", i, id, expected[i])
		}
	}

	if _, err := a.Permutation(MustSchema("x", "y", "w")); err == nil {
		t.Error("Expected error for mismatched column sets")
	}
}
