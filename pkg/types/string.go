package types

import (
	"tabkit/pkg/primitives"
)

// StringField represents a variable-length string value
type StringField struct {
	Value string
}

func NewStringField(value string) *StringField {
	return &StringField{Value: value}
}

func (f *StringField) Type() Type {
	return StringType
}

func (f *StringField) String() string {
	return f.Value
}

func (f *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *StringField) Hash() primitives.HashCode {
	bytes := make([]byte, 0, len(f.Value)+1)
	bytes = append(bytes, byte(StringType))
	bytes = append(bytes, f.Value...)
	return primitives.HashBytes(bytes)
}
