// Package backtrack adds rewind capability to forward-only sequences: a
// Recorder pulls values lazily from an underlying iter.Seq, records every
// value it produces, and hands out cursors that can advance, save their
// position as a Mark, and backtrack to any previously recorded position,
// deterministically replaying the same values.
//
// The underlying source is pulled at most once per logical position no
// matter how many cursors visit it, so replay never re-triggers source side
// effects. Two cursor variants share one recorder: CopyingCursor yields
// independent value copies, ReferencingCursor yields non-owning views into
// the recorded history.
//
// Take a look at the package tests for end-to-end usage.
package backtrack
