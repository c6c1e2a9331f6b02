package types

import "tabkit/pkg/primitives"

// Field represents a single dynamically typed cell value.
//
// Equals implements the join-key equality rule: values of different types
// are never equal, and a missing value is never equal to anything,
// including another missing value. Callers that need the set-operation
// rule (missing equals missing) should use Equivalent instead.
type Field interface {
	// Type returns the runtime type tag of this value.
	Type() Type

	// String returns a display representation of the value.
	String() string

	// Equals reports whether two values are exactly equal.
	// Missing values are never equal under this predicate.
	Equals(other Field) bool

	// Hash returns a hash code consistent with Equals for non-missing
	// values: equal values always produce equal hash codes.
	Hash() primitives.HashCode
}

// Equivalent reports whether two values are interchangeable for
// whole-row deduplication: it behaves like Equals except that two
// missing values compare equal. Set operations use this predicate;
// join keys must not.
func Equivalent(a, b Field) bool {
	if a.Type() == MissingType && b.Type() == MissingType {
		return true
	}
	return a.Equals(b)
}

// IsMissing reports whether the field is the missing-value marker.
func IsMissing(f Field) bool {
	return f.Type() == MissingType
}
