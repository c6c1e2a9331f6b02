// Package resample produces index-based views over an immutable backing
// dataset: bootstrap resamples and Monte-Carlo cross-validation splits.
//
// A View never copies row data; it holds only an index list plus a
// reference to the backing dataset, which must outlive every view
// derived from it. Materialize builds a standalone dataset on demand
// for downstream consumers such as model fitting.
//
// Sampling is bit-reproducible: all randomness comes from math/rand/v2
// PCG generators seeded from the caller's seed. Bootstrap uses the
// stream seeded (seed, 0) and draws N values via IntN in index order;
// cross-validation split i uses its own stream seeded (seed, i+1) and
// consumes exactly one permutation, so splits stay deterministic even
// when generated concurrently.
package resample
