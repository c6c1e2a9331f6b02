package primitives

import (
	"github.com/cespare/xxhash/v2"
)

// HashBytes computes a 64-bit hash of the given bytes using xxHash.
// The same input always produces the same HashCode within and across runs,
// which keeps hash-keyed structures deterministic.
func HashBytes(b []byte) HashCode {
	return HashCode(xxhash.Sum64(b))
}

// HashString computes a 64-bit hash of the given string using xxHash.
func HashString(s string) HashCode {
	return HashCode(xxhash.Sum64String(s))
}

// CombineHash folds a field hash into an accumulated row hash.
// The multiplier keeps field order significant, so rows that contain the
// same values in different columns hash differently.
func CombineHash(acc, field HashCode) HashCode {
	return acc*31 + field
}
