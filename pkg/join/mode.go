package join

// Mode selects the join variant
type Mode int

const (
	// Inner emits one combined row per matching left/right pair.
	Inner Mode = iota

	// Left emits every left row: combined when matched, padded with
	// missing right columns when not.
	Left

	// Right emits every right row: combined when matched, padded with
	// missing left columns when not.
	Right

	// Full emits every row of both sides, padding whichever side has
	// no counterpart.
	Full

	// Semi emits each left row with at least one match, exactly once,
	// with only the left columns.
	Semi

	// Anti emits each left row with zero matches, with only the left
	// columns.
	Anti
)

// String returns a string representation of the mode
func (m Mode) String() string {
	switch m {
	case Inner:
		return "INNER"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Full:
		return "FULL"
	case Semi:
		return "SEMI"
	case Anti:
		return "ANTI"
	default:
		return "UNKNOWN"
	}
}

// IsFiltering reports whether the mode only filters left rows without
// adding right-side columns.
func (m Mode) IsFiltering() bool {
	return m == Semi || m == Anti
}
