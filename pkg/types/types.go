package types

type Type int

const (
	IntType Type = iota
	FloatType
	StringType
	BoolType
	MissingType
)

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case IntType:
		return "INT_TYPE"
	case FloatType:
		return "FLOAT_TYPE"
	case StringType:
		return "STRING_TYPE"
	case BoolType:
		return "BOOL_TYPE"
	case MissingType:
		return "MISSING_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}
