package resample

import (
	"math"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"

	"tabkit/pkg/dataset"
)

// Split pairs the train and test views of one cross-validation draw.
// Train and test indices are disjoint and together cover every row of
// the backing dataset exactly once.
type Split struct {
	Train *View
	Test  *View
}

// Bootstrap draws a resample of the dataset's own size, each index
// chosen independently and uniformly with replacement, using the given
// seed for reproducibility.
//
// Returns InvalidInputError if the dataset is empty.
func Bootstrap(d *dataset.Dataset, seed uint64) (*View, error) {
	if d == nil || d.NumRows() == 0 {
		return nil, &InvalidInputError{Param: "dataset", Detail: "must contain at least one row"}
	}

	n := d.NumRows()
	rng := rand.New(rand.NewPCG(seed, 0))

	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.IntN(n)
	}

	return NewView(d, indices)
}

// CrossValidation draws k independent Monte-Carlo train/test splits.
// Each split holds out round(N * holdoutFraction) rows, chosen without
// replacement, as the test view; the remaining rows form the train
// view. Splits are drawn independently: a row may land in the test set
// of several splits, or none.
//
// Split i consumes only its own PCG stream seeded (seed, i+1), so the
// result is reproducible and independent of how the splits are
// scheduled across goroutines.
//
// Returns InvalidInputError if the dataset is empty, k < 1, or
// holdoutFraction is outside (0, 1).
func CrossValidation(d *dataset.Dataset, k int, holdoutFraction float64, seed uint64) ([]Split, error) {
	if d == nil || d.NumRows() == 0 {
		return nil, &InvalidInputError{Param: "dataset", Detail: "must contain at least one row"}
	}
	if k < 1 {
		return nil, &InvalidInputError{Param: "k", Detail: "must be at least 1"}
	}
	if holdoutFraction <= 0 || holdoutFraction >= 1 {
		return nil, &InvalidInputError{Param: "holdoutFraction", Detail: "must be in (0, 1)"}
	}

	n := d.NumRows()
	testSize := int(math.Round(float64(n) * holdoutFraction))

	splits := make([]Split, k)
	var g errgroup.Group
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(i)+1)) // #nosec G115
			perm := rng.Perm(n)

			test := append([]int(nil), perm[:testSize]...)
			train := append([]int(nil), perm[testSize:]...)
			sort.Ints(test)
			sort.Ints(train)

			testView, err := NewView(d, test)
			if err != nil {
				return err
			}
			trainView, err := NewView(d, train)
			if err != nil {
				return err
			}

			splits[i] = Split{Train: trainView, Test: testView}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return splits, nil
}
