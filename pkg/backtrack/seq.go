package backtrack

import (
	"iter"
)

// Seq drives the cursor from its current position as a standard sequence.
// Ranging advances the cursor; breaking out leaves it positioned after the
// last yielded value, so a Mark taken afterwards resumes from there. The
// sequence stops after yielding a source failure; the cursor itself remains
// usable.
func (c *CopyingCursor[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			value, ok := c.Next()
			if !ok {
				if c.err != nil {
					yield(value, c.err)
				}
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Seq drives the cursor from its current position, yielding views into the
// recorded history. Same termination behavior as the copying variant.
func (c *ReferencingCursor[T]) Seq() iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for {
			item := c.Next()
			if item == nil {
				if c.err != nil {
					yield(nil, c.err)
				}
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
