package types

import (
	"tabkit/pkg/primitives"
)

// MissingField is the missing-value marker (NA).
//
// It never compares equal under Equals, not even to another missing
// value, which gives join keys their missing-never-matches rule. Its
// hash is a fixed constant so that set operations, which treat missing
// values as interchangeable via Equivalent, can still bucket rows
// containing them consistently.
type MissingField struct{}

// missing is the shared marker instance; every missing cell points here.
var missing = &MissingField{}

func NewMissingField() *MissingField {
	return missing
}

func (f *MissingField) Type() Type {
	return MissingType
}

func (f *MissingField) String() string {
	return "NA"
}

func (f *MissingField) Equals(other Field) bool {
	return false
}

func (f *MissingField) Hash() primitives.HashCode {
	return primitives.HashBytes([]byte{byte(MissingType)})
}
