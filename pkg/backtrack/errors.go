package backtrack

import (
	"errors"
	"fmt"
)

// OutOfRangeError is returned when a position beyond the recorder's frontier
// is requested, either via Backtrack or by a cursor driven past its bound.
// The rejected request leaves the recorder and the cursor unchanged.
type OutOfRangeError struct {
	// Requested is the position that was asked for.
	Requested Mark

	// Frontier is the highest acceptable position at the time of the
	// request, equal to the recorded history length.
	Frontier Mark
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is out of range: history frontier is %d", err.Requested, err.Frontier)
}

// AsOutOfRangeError returns the error as an *OutOfRangeError, if applicable.
func AsOutOfRangeError(err error) (*OutOfRangeError, bool) {
	var rangeErr *OutOfRangeError
	if errors.As(err, &rangeErr) {
		return rangeErr, true
	}
	return nil, false
}
