package backtrack

import (
	"sync"
)

// SharedRecorder serializes access to a Recorder so its cursors can be
// driven from multiple goroutines. Only the record-or-replay path is
// guarded; each cursor's position is unsynchronized and the cursor must
// still be driven by a single goroutine.
type SharedRecorder[T any] struct {
	mu  sync.Mutex
	rec *Recorder[T]
}

// Share wraps a recorder for concurrent driving. The wrapped recorder must
// not be used directly afterwards.
func Share[T any](r *Recorder[T]) *SharedRecorder[T] {
	return &SharedRecorder[T]{rec: r}
}

func (s *SharedRecorder[T]) resolve(index int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.resolve(index)
}

// Len returns the number of recorded values.
func (s *SharedRecorder[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Len()
}

// Exhausted reports whether the underlying source has signaled completion.
func (s *SharedRecorder[T]) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Exhausted()
}

// History returns a copy of the recorded values.
func (s *SharedRecorder[T]) History() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.History()
}

// Close releases the underlying source. Idempotent.
func (s *SharedRecorder[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Close()
}

// Copying returns a new duplicating cursor positioned at the start of the
// history, safe to drive from its own goroutine.
func (s *SharedRecorder[T]) Copying() *CopyingCursor[T] {
	return &CopyingCursor[T]{cursor[T]{rec: s}}
}

// Referencing returns a new referencing cursor positioned at the start of
// the history, safe to drive from its own goroutine. Views handed out
// remain valid even as other goroutines grow the history.
func (s *SharedRecorder[T]) Referencing() *ReferencingCursor[T] {
	return &ReferencingCursor[T]{cursor[T]{rec: s}}
}
