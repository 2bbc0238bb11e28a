package backtrack

import (
	"github.com/ccoveille/go-safecast/v2"

	"github.com/rewindable/backtrack/internal/logging"
)

// Mark is an opaque saved cursor position. A Mark is valid for the lifetime
// of the recorder it was obtained from: history never shrinks, so a
// recorded position never goes stale. Marks are not portable across
// recorders.
type Mark uint64

// cursor carries the position state and the forward/replay branching shared
// by both output modes. The variants differ only in how a resolved history
// reference becomes an output.
type cursor[T any] struct {
	rec      resolver[T]
	position int
	err      error
}

func (c *cursor[T]) advance() *T {
	item, err := c.rec.resolve(c.position)
	c.err = err
	if item != nil {
		c.position++
	}
	return item
}

// Mark returns the cursor's current position.
func (c *cursor[T]) Mark() Mark {
	position, _ := safecast.Convert[uint64](c.position) // position is never negative
	return Mark(position)
}

// Backtrack moves the cursor to a previously obtained Mark. Marks up to and
// including the recorder's frontier are accepted; anything beyond fails
// with *OutOfRangeError and leaves the position unchanged.
func (c *cursor[T]) Backtrack(m Mark) error {
	frontier := Mark(c.rec.Len())
	index, err := safecast.Convert[int](uint64(m))
	if err != nil || m > frontier {
		logging.Debug().
			Uint64("mark", uint64(m)).
			Uint64("frontier", uint64(frontier)).
			Msg("backtrack rejected")
		return &OutOfRangeError{Requested: m, Frontier: frontier}
	}
	c.position = index
	c.err = nil
	return nil
}

// Rewind moves the cursor back to the oldest recorded position.
func (c *cursor[T]) Rewind() {
	c.position = 0
	c.err = nil
}

// Err returns the source failure from the most recent Next, if any. End of
// sequence is not an error. A successful Next clears it.
func (c *cursor[T]) Err() error {
	return c.err
}

// WalkBack returns a reverse traversal over everything recorded so far.
func (c *cursor[T]) WalkBack() *Walkback[T] {
	return &Walkback[T]{rec: c.rec, reverse: c.rec.Len()}
}

// CopyingCursor yields independent copies of recorded values. Copies may be
// retained and mutated freely; replays of the same position are unaffected.
type CopyingCursor[T any] struct {
	cursor[T]
}

// Next returns a copy of the value at the cursor's position and advances by
// one. It returns false at the end of the sequence or on a source failure;
// Err distinguishes the two. Neither outcome poisons the cursor: it can be
// backtracked and re-driven through the recorded prefix.
func (c *CopyingCursor[T]) Next() (T, bool) {
	item := c.advance()
	if item == nil {
		var zero T
		return zero, false
	}
	return *item, true
}

// ReferencingCursor yields non-owning views into the recorder's history. A
// returned pointer stays valid for the recorder's lifetime: history only
// grows, and recorded slots are never overwritten. Callers must not write
// through it.
type ReferencingCursor[T any] struct {
	cursor[T]
}

// Next returns a view of the value at the cursor's position and advances by
// one. It returns nil at the end of the sequence or on a source failure;
// Err distinguishes the two.
func (c *ReferencingCursor[T]) Next() *T {
	return c.advance()
}
