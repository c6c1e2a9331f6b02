package resample

import (
	"fmt"

	"tabkit/pkg/dataset"
)

// View is an ordered list of row indices into an immutable backing
// dataset. It never owns or copies row data.
type View struct {
	data    *dataset.Dataset
	indices []int
}

// NewView creates a view over the given dataset from the given indices.
// The index slice is copied. Every index must be a valid row offset.
func NewView(d *dataset.Dataset, indices []int) (*View, error) {
	if d == nil {
		return nil, fmt.Errorf("view backing dataset cannot be nil")
	}

	indicesCopy := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= d.NumRows() {
			return nil, fmt.Errorf("view index %d out of bounds [0, %d)", idx, d.NumRows())
		}
		indicesCopy[i] = idx
	}

	return &View{
		data:    d,
		indices: indicesCopy,
	}, nil
}

// Len returns the number of indices in the view.
func (v *View) Len() int {
	return len(v.indices)
}

// Indices returns a copy of the view's index list, without
// materializing any rows.
func (v *View) Indices() []int {
	indicesCopy := make([]int, len(v.indices))
	copy(indicesCopy, v.indices)
	return indicesCopy
}

// Dataset returns the backing dataset.
func (v *View) Dataset() *dataset.Dataset {
	return v.data
}

// Materialize builds a standalone dataset holding the referenced rows,
// in view order. Rows repeated in the view appear repeatedly in the
// output. Field values are shared with the backing dataset, which is
// safe because they are immutable.
func (v *View) Materialize() (*dataset.Dataset, error) {
	rows := make([]dataset.Row, len(v.indices))
	for i, idx := range v.indices {
		row, err := v.data.Row(idx)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return dataset.NewDataset(v.data.Schema(), rows)
}
