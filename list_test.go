package scalarseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertPanicsWith asserts that fn panics with an error matching want.
func assertPanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		v := recover()
		if v == nil {
			t.Errorf("expected a panic with %q", want)
			return
		}
		err, ok := v.(error)
		if !ok {
			t.Errorf("panic value %#v is not an error", v)
			return
		}
		assert.ErrorIs(t, err, want)
	}()
	fn()
}

type listSuiteParams[T Scalar] struct {
	newList                    func(elems ...T) List[T]
	elemA, elemB, elemC, elemD T
}

func TestArrayListContract(t *testing.T) {
	t.Parallel()

	testListContract(t, listSuiteParams[int16]{
		newList: func(elems ...int16) List[int16] { return NewFromSlice(elems) },
		elemA:   1, elemB: 2, elemC: 3, elemD: 4,
	})
}

func TestBitListContract(t *testing.T) {
	t.Parallel()

	testListContract(t, listSuiteParams[bool]{
		newList: func(elems ...bool) List[bool] { return NewBitListFromSlice(elems) },
		elemA:   true, elemB: false, elemC: true, elemD: false,
	})
}

func TestSubListContract(t *testing.T) {
	t.Parallel()

	// a view over the middle of a larger list must behave exactly like a
	// standalone list
	testListContract(t, listSuiteParams[int64]{
		newList: func(elems ...int64) List[int64] {
			backing := NewFromSlice(append(append([]int64{-100}, elems...), -200))
			return backing.SubList(1, 1+len(elems))
		},
		elemA: 10, elemB: 20, elemC: 30, elemD: 40,
	})
}

func testListContract[T Scalar](t *testing.T, params listSuiteParams[T]) {
	newList := params.newList
	elemA := params.elemA
	elemB := params.elemB
	elemC := params.elemC
	elemD := params.elemD

	t.Run("At", func(t *testing.T) {
		list := newList(elemA, elemB)
		assert.Equal(t, elemA, list.At(0))
		assert.Equal(t, elemB, list.At(1))

		assertPanicsWith(t, ErrIndexOutOfRange, func() { list.At(-1) })
		assertPanicsWith(t, ErrIndexOutOfRange, func() { list.At(2) })
	})

	t.Run("SetAt", func(t *testing.T) {
		list := newList(elemA)
		before := list.Version()

		assert.Equal(t, elemA, list.SetAt(0, elemB))
		assert.Equal(t, elemB, list.At(0))
		assert.NotEqual(t, before, list.Version())

		assertPanicsWith(t, ErrIndexOutOfRange, func() { list.SetAt(1, elemA) })
	})

	t.Run("InsertAt", func(t *testing.T) {
		list := newList(elemA)
		list.InsertAt(0, elemB)
		assert.Equal(t, []T{elemB, elemA}, ToSlice[T](list))

		list.InsertAt(1, elemC)
		assert.Equal(t, []T{elemB, elemC, elemA}, ToSlice[T](list))

		list.InsertAt(3, elemD)
		assert.Equal(t, []T{elemB, elemC, elemA, elemD}, ToSlice[T](list))

		assertPanicsWith(t, ErrInsertionIndexOutOfRange, func() { list.InsertAt(-1, elemA) })
		assertPanicsWith(t, ErrInsertionIndexOutOfRange, func() { list.InsertAt(5, elemA) })
	})

	t.Run("InsertAt bumps the version exactly once", func(t *testing.T) {
		list := newList(elemA)
		before := list.Version()
		list.InsertAt(0, elemB)
		assert.Equal(t, before+1, list.Version())
	})

	t.Run("RemoveAt", func(t *testing.T) {
		list := newList(elemA, elemB, elemC, elemD)

		assertPanicsWith(t, ErrIndexOutOfRange, func() { list.RemoveAt(4) })

		assert.Equal(t, elemA, list.RemoveAt(0))
		assert.Equal(t, []T{elemB, elemC, elemD}, ToSlice[T](list))

		assert.Equal(t, elemC, list.RemoveAt(1))
		assert.Equal(t, []T{elemB, elemD}, ToSlice[T](list))

		assert.Equal(t, elemD, list.RemoveAt(1))
		assert.Equal(t, []T{elemB}, ToSlice[T](list))

		assert.Equal(t, elemB, list.RemoveAt(0))
		assert.Equal(t, []T{}, ToSlice[T](list))

		assertPanicsWith(t, ErrIndexOutOfRange, func() { list.RemoveAt(0) })
	})

	t.Run("RemoveAt shifts higher indices down by one", func(t *testing.T) {
		list := newList(elemA, elemB, elemC)
		size := list.Len()
		list.RemoveAt(0)
		assert.Equal(t, size-1, list.Len())
		assert.Equal(t, elemB, list.At(0))
		assert.Equal(t, elemC, list.At(1))
	})

	t.Run("InsertAll", func(t *testing.T) {
		t.Run("at existing index", func(t *testing.T) {
			list := newList(elemA)
			assert.True(t, InsertAll[T](list, 0, newList(elemB, elemC)))
			assert.Equal(t, []T{elemB, elemC, elemA}, ToSlice[T](list))
		})

		t.Run("at exclusive end", func(t *testing.T) {
			list := newList(elemA)
			assert.True(t, InsertAll[T](list, 1, newList(elemB, elemC)))
			assert.Equal(t, []T{elemA, elemB, elemC}, ToSlice[T](list))
		})

		t.Run("empty source is a complete no-op", func(t *testing.T) {
			list := newList(elemA)
			before := list.Version()

			assert.False(t, InsertAll[T](list, 0, newList()))
			assert.Equal(t, before, list.Version())

			// not even the index is validated
			assert.False(t, InsertAll[T](list, 99, newList()))
		})

		t.Run("nil source", func(t *testing.T) {
			list := newList(elemA)
			assertPanicsWith(t, ErrNilSequence, func() { InsertAll[T](list, 0, nil) })
		})
	})

	t.Run("cursor yields every element in index order", func(t *testing.T) {
		list := newList(elemA, elemB, elemC)

		var forward []T
		for c := NewCursor[T](list, 0); c.HasNext(); {
			forward = append(forward, c.Next())
		}
		assert.Equal(t, []T{elemA, elemB, elemC}, forward)

		var backward []T
		for c := NewCursor[T](list, list.Len()); c.HasPrev(); {
			backward = append(backward, c.Prev())
		}
		assert.Equal(t, []T{elemC, elemB, elemA}, backward)
	})

	t.Run("cursor fails fast after a direct mutation", func(t *testing.T) {
		list := newList(elemA, elemB)
		cursor := NewCursor[T](list, 0)
		cursor.Next()

		list.InsertAt(0, elemC)

		assertPanicsWith(t, ErrConcurrentModification, func() { cursor.Next() })
		assertPanicsWith(t, ErrConcurrentModification, func() { cursor.HasNext() })
		assertPanicsWith(t, ErrConcurrentModification, func() { cursor.Remove() })
	})

	t.Run("cursor survives its own mutations", func(t *testing.T) {
		list := newList(elemA, elemB)
		cursor := NewCursor[T](list, 0)

		assert.Equal(t, elemA, cursor.Next())
		cursor.Set(elemC)
		assert.Equal(t, elemC, cursor.Remove())
		cursor.Add(elemD)
		assert.Equal(t, elemB, cursor.Next())

		assert.Equal(t, []T{elemD, elemB}, ToSlice[T](list))
	})
}
