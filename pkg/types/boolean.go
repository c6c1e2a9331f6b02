package types

import (
	"tabkit/pkg/primitives"
)

// BoolField represents a boolean value
type BoolField struct {
	Value bool
}

func NewBoolField(value bool) *BoolField {
	return &BoolField{Value: value}
}

func (f *BoolField) Type() Type {
	return BoolType
}

func (f *BoolField) String() string {
	if f.Value {
		return "true"
	}
	return "false"
}

func (f *BoolField) Equals(other Field) bool {
	otherField, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *BoolField) Hash() primitives.HashCode {
	b := byte(0)
	if f.Value {
		b = 1
	}
	return primitives.HashBytes([]byte{byte(BoolType), b})
}
