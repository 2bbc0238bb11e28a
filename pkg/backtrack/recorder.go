package backtrack

import (
	"iter"
	"slices"

	"github.com/rewindable/backtrack/internal/logging"
)

// resolver is the record-or-replay surface cursors consume. Implemented by
// Recorder and SharedRecorder.
type resolver[T any] interface {
	// resolve returns a reference to the item at the given logical index,
	// pulling from the source if the index sits at the frontier. A nil item
	// with a nil error signals end of sequence.
	resolve(index int) (*T, error)

	// Len returns the number of recorded items.
	Len() int
}

// Recorder wraps a forward-only sequence with an append-only history of
// every value it has produced. The source is pulled at most once per
// logical position; once recorded, a slot is never mutated or removed, so
// views into the history stay valid for the recorder's lifetime.
//
// A Recorder and its cursors must be driven from a single goroutine. Wrap
// it with Share to drive cursors concurrently.
type Recorder[T any] struct {
	next      func() (T, error, bool)
	stop      func()
	history   []T
	exhausted bool
}

// NewRecorder wraps an infallible sequence.
func NewRecorder[T any](seq iter.Seq[T]) *Recorder[T] {
	return NewFallibleRecorder(infallible(seq))
}

// NewFallibleRecorder wraps a sequence whose producer can fail mid-stream.
// A yielded error is surfaced to the consuming cursor and is not recorded:
// the failed position stays unfilled, and the next read of that position
// pulls from the source again.
func NewFallibleRecorder[T any](seq iter.Seq2[T, error]) *Recorder[T] {
	next, stop := iter.Pull2(seq)
	return &Recorder[T]{next: next, stop: stop}
}

func infallible[T any](seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value := range seq {
			if !yield(value, nil) {
				return
			}
		}
	}
}

// resolve is the record-or-replay core shared by every cursor: replay below
// the recorded length, pull at the frontier, report end past the frontier
// once the source is exhausted.
func (r *Recorder[T]) resolve(index int) (*T, error) {
	switch {
	case index < len(r.history):
		return &r.history[index], nil

	case index == len(r.history):
		if r.exhausted {
			return nil, nil
		}
		value, err, ok := r.next()
		if !ok {
			logging.Trace().Int("recorded", len(r.history)).Msg("source exhausted")
			r.exhausted = true
			r.stop()
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		r.history = append(r.history, value)
		return &r.history[index], nil

	default:
		return nil, &OutOfRangeError{Requested: Mark(index), Frontier: Mark(len(r.history))}
	}
}

// Len returns the number of recorded values.
func (r *Recorder[T]) Len() int {
	return len(r.history)
}

// Exhausted reports whether the underlying source has signaled completion.
func (r *Recorder[T]) Exhausted() bool {
	return r.exhausted
}

// History returns a copy of the recorded values.
func (r *Recorder[T]) History() []T {
	return slices.Clone(r.history)
}

// Close releases the underlying source. The recorder behaves as if the
// source completed at its current frontier: everything recorded so far
// remains replayable. Close is idempotent.
func (r *Recorder[T]) Close() {
	if r.exhausted {
		return
	}
	r.exhausted = true
	r.stop()
}

// Copying returns a new duplicating cursor positioned at the start of the
// history. Any number of cursors of either kind may coexist.
func (r *Recorder[T]) Copying() *CopyingCursor[T] {
	return &CopyingCursor[T]{cursor[T]{rec: r}}
}

// Referencing returns a new referencing cursor positioned at the start of
// the history.
func (r *Recorder[T]) Referencing() *ReferencingCursor[T] {
	return &ReferencingCursor[T]{cursor[T]{rec: r}}
}

// Resume returns a sequence that replays the recorded history from the
// beginning and then continues pulling from the source, recording as it
// goes. Equivalent to ranging over a fresh copying cursor.
func (r *Recorder[T]) Resume() iter.Seq2[T, error] {
	return r.Copying().Seq()
}
