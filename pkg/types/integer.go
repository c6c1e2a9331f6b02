package types

import (
	"encoding/binary"
	"strconv"

	"tabkit/pkg/primitives"
)

// IntField represents a 64-bit signed integer value
type IntField struct {
	Value int64
}

func NewIntField(value int64) *IntField {
	return &IntField{Value: value}
}

func (f *IntField) Type() Type {
	return IntType
}

func (f *IntField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *IntField) Equals(other Field) bool {
	otherField, ok := other.(*IntField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *IntField) Hash() primitives.HashCode {
	bytes := make([]byte, 9)
	bytes[0] = byte(IntType)
	binary.BigEndian.PutUint64(bytes[1:], uint64(f.Value)) // #nosec G115
	return primitives.HashBytes(bytes)
}
