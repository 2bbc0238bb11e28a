package backtrack

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingSeq yields the given values in order, incrementing *pulls once per
// produced value.
func countingSeq[T any](values []T, pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range values {
			*pulls++
			if !yield(value) {
				return
			}
		}
	}
}

func TestRecordAndReplayScenario(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]int{10, 20, 30}, &pulls))
	defer rec.Close()

	cur := rec.Copying()

	value, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 10, value)

	m := cur.Mark()
	require.Equal(t, Mark(1), m)

	for _, expected := range []int{20, 30} {
		value, ok = cur.Next()
		require.True(t, ok)
		require.Equal(t, expected, value)
	}

	_, ok = cur.Next()
	require.False(t, ok)
	require.NoError(t, cur.Err())
	require.Equal(t, Mark(3), cur.Mark())

	require.NoError(t, cur.Backtrack(m))
	for _, expected := range []int{20, 30} {
		value, ok = cur.Next()
		require.True(t, ok)
		require.Equal(t, expected, value)
	}
	_, ok = cur.Next()
	require.False(t, ok)

	require.Equal(t, 3, pulls)
}

func TestAtMostOncePull(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]int{1, 2, 3, 4, 5}, &pulls))
	defer rec.Close()

	cur := rec.Copying()
	m := cur.Mark()
	for range 5 {
		_, ok := cur.Next()
		require.True(t, ok)
	}

	require.NoError(t, cur.Backtrack(m))
	for range 5 {
		_, ok := cur.Next()
		require.True(t, ok)
	}

	require.Equal(t, 5, pulls)
}

func TestCrossCursorSharing(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]string{"a", "b", "c"}, &pulls))
	defer rec.Close()

	first := rec.Copying()
	second := rec.Copying()

	collect := func(cur *CopyingCursor[string]) []string {
		var out []string
		for {
			value, ok := cur.Next()
			if !ok {
				break
			}
			out = append(out, value)
		}
		return out
	}

	require.Equal(t, []string{"a", "b", "c"}, collect(first))
	require.Equal(t, []string{"a", "b", "c"}, collect(second))
	require.Equal(t, 3, pulls)
}

func TestExhaustionIdempotence(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]int{1, 2}, &pulls))
	defer rec.Close()

	cur := rec.Copying()
	for range 2 {
		_, ok := cur.Next()
		require.True(t, ok)
	}

	for range 3 {
		_, ok := cur.Next()
		require.False(t, ok)
		require.NoError(t, cur.Err())
		require.Equal(t, Mark(2), cur.Mark())
	}
	require.True(t, rec.Exhausted())
	require.Equal(t, 2, pulls)

	// The cursor is not poisoned: the recorded prefix stays replayable.
	require.NoError(t, cur.Backtrack(Mark(0)))
	value, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 1, value)
}

func TestResolveOutOfRange(t *testing.T) {
	rec := NewRecorder(countingSeq([]int{1}, new(int)))
	defer rec.Close()

	item, err := rec.resolve(3)
	require.Nil(t, item)

	rangeErr, ok := AsOutOfRangeError(err)
	require.True(t, ok)
	require.Equal(t, Mark(3), rangeErr.Requested)
	require.Equal(t, Mark(0), rangeErr.Frontier)
	require.Equal(t, 0, rec.Len())
}

func TestHistoryIsACopy(t *testing.T) {
	rec := NewRecorder(countingSeq([]int{1, 2, 3}, new(int)))
	defer rec.Close()

	cur := rec.Copying()
	for range 3 {
		cur.Next()
	}

	history := rec.History()
	require.Equal(t, []int{1, 2, 3}, history)

	history[0] = 99
	cur.Rewind()
	value, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 1, value)
}

func TestCloseStopsAtFrontier(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]int{1, 2, 3}, &pulls))

	cur := rec.Copying()
	value, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 1, value)

	rec.Close()
	rec.Close()
	require.True(t, rec.Exhausted())

	_, ok = cur.Next()
	require.False(t, ok)
	require.NoError(t, cur.Err())
	require.Equal(t, 1, pulls)

	cur.Rewind()
	value, ok = cur.Next()
	require.True(t, ok)
	require.Equal(t, 1, value)
}

func TestResume(t *testing.T) {
	pulls := 0
	rec := NewRecorder(countingSeq([]int{1, 2, 3, 4}, &pulls))
	defer rec.Close()

	cur := rec.Copying()
	for range 2 {
		_, ok := cur.Next()
		require.True(t, ok)
	}

	var resumed []int
	for value, err := range rec.Resume() {
		require.NoError(t, err)
		resumed = append(resumed, value)
	}

	require.Equal(t, []int{1, 2, 3, 4}, resumed)
	require.Equal(t, 4, pulls)
}

func TestFallibleSourceRetry(t *testing.T) {
	errFlaky := errors.New("flaky source")
	pulls := 0
	rec := NewFallibleRecorder(func(yield func(int, error) bool) {
		pulls++
		if !yield(7, nil) {
			return
		}
		pulls++
		if !yield(0, errFlaky) {
			return
		}
		pulls++
		yield(9, nil)
	})
	defer rec.Close()

	cur := rec.Copying()

	value, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 7, value)

	// The failed pull records nothing and does not advance the cursor.
	_, ok = cur.Next()
	require.False(t, ok)
	require.ErrorIs(t, cur.Err(), errFlaky)
	require.Equal(t, Mark(1), cur.Mark())
	require.Equal(t, 1, rec.Len())

	// Retrying the same position re-invokes the source.
	value, ok = cur.Next()
	require.True(t, ok)
	require.Equal(t, 9, value)
	require.NoError(t, cur.Err())
	require.Equal(t, 3, pulls)
	require.Equal(t, []int{7, 9}, rec.History())
}
