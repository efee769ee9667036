package arff

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedInputError reports an input file that violates the ARFF subset
// accepted by the Importer. Line is 1-based; it is 0 for errors that are not
// tied to a specific line.
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: malformed input: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s:%d: malformed input: %s", e.Path, e.Line, e.Reason)
}

// IsMalformedInput reports whether err was caused by a MalformedInputError.
func IsMalformedInput(err error) bool {
	_, ok := errors.Cause(err).(*MalformedInputError)
	return ok
}
