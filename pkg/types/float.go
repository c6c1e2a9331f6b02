package types

import (
	"encoding/binary"
	"math"
	"strconv"

	"tabkit/pkg/primitives"
)

// Float64Field represents a 64-bit floating point value
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Type() Type {
	return FloatType
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float64Field) Hash() primitives.HashCode {
	bits := math.Float64bits(f.Value)
	if f.Value == 0 {
		bits = 0 // -0.0 and +0.0 compare equal, hash them the same
	}
	bytes := make([]byte, 9)
	bytes[0] = byte(FloatType)
	binary.BigEndian.PutUint64(bytes[1:], bits)
	return primitives.HashBytes(bytes)
}
