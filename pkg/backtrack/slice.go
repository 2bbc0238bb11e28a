package backtrack

import (
	"iter"

	"github.com/ccoveille/go-safecast/v2"
)

// SliceCursor is the cursor surface over an already-materialized slice: no
// recorder, no recording, positions are plain indexes into the slice.
type SliceCursor[T any] struct {
	items    []T
	position int
}

// NewSliceCursor returns a cursor over items, positioned at the start. The
// slice is not copied; the caller must not shrink it while the cursor is
// live.
func NewSliceCursor[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items}
}

// Next returns a view of the value at the cursor's position and advances by
// one, or nil at the end of the slice.
func (c *SliceCursor[T]) Next() *T {
	if c.position >= len(c.items) {
		return nil
	}
	item := &c.items[c.position]
	c.position++
	return item
}

// Mark returns the cursor's current position.
func (c *SliceCursor[T]) Mark() Mark {
	position, _ := safecast.Convert[uint64](c.position) // never negative
	return Mark(position)
}

// Backtrack moves the cursor to a previously obtained Mark. Marks up to and
// including the slice length are accepted; anything beyond fails with
// *OutOfRangeError and leaves the position unchanged.
func (c *SliceCursor[T]) Backtrack(m Mark) error {
	frontier := Mark(len(c.items))
	index, err := safecast.Convert[int](uint64(m))
	if err != nil || m > frontier {
		return &OutOfRangeError{Requested: m, Frontier: frontier}
	}
	c.position = index
	return nil
}

// Rewind moves the cursor back to the start of the slice.
func (c *SliceCursor[T]) Rewind() {
	c.position = 0
}

// Seq drives the cursor from its current position, yielding views into the
// slice. Breaking out leaves the cursor positioned after the last yielded
// value.
func (c *SliceCursor[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			item := c.Next()
			if item == nil {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
