package setops

import (
	"fmt"
	"strings"
)

// SchemaMismatchError reports set-operation inputs whose column sets
// differ. Column order is not part of the comparison.
type SchemaMismatchError struct {
	LeftColumns  []string
	RightColumns []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("set operation inputs have different column sets: (%s) vs (%s)",
		strings.Join(e.LeftColumns, ", "), strings.Join(e.RightColumns, ", "))
}
