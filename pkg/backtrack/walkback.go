package backtrack

import (
	"github.com/ccoveille/go-safecast/v2"
)

// Walkback traverses the recorded history in reverse, newest value first.
// Its Mark sits before the most recently yielded value, so after walking
// back to an interesting value, Mark feeds straight into Backtrack to
// re-drive a cursor from that point.
//
// A Walkback only replays; it never pulls from the source.
type Walkback[T any] struct {
	rec     resolver[T]
	reverse int
}

// Next returns a view of the previous recorded value, or nil once the
// oldest value has been yielded.
func (w *Walkback[T]) Next() *T {
	if w.reverse == 0 {
		return nil
	}
	w.reverse--
	item, _ := w.rec.resolve(w.reverse) // below the frontier, cannot fail
	return item
}

// Mark returns the position before the most recently yielded value.
func (w *Walkback[T]) Mark() Mark {
	position, _ := safecast.Convert[uint64](w.reverse) // never negative
	return Mark(position)
}
