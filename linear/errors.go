package linear

import (
	"fmt"

	"github.com/pkg/errors"
)

// NumericDivergenceError reports that training produced a non-finite cost,
// gradient, or weight on the given iteration. The model keeps the weights of
// the last finite iteration.
type NumericDivergenceError struct {
	Iteration int
}

func (e *NumericDivergenceError) Error() string {
	return fmt.Sprintf("training diverged on iteration %d", e.Iteration)
}

// IsNumericDivergence reports whether err was caused by a
// NumericDivergenceError.
func IsNumericDivergence(err error) bool {
	_, ok := errors.Cause(err).(*NumericDivergenceError)
	return ok
}
