package resample

import "fmt"

// InvalidInputError reports malformed resampling parameters: an empty
// backing dataset, a holdout fraction outside (0, 1), or k < 1.
type InvalidInputError struct {
	Param  string // The offending parameter
	Detail string // What was wrong with it
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid resampling input %s: %s", e.Param, e.Detail)
}
