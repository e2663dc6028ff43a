package scalarseq

import "fmt"

// SliceList adapts a caller-owned slice into a fixed-size List: reads and
// in-place writes go straight to the slice, resizing operations panic with
// ErrUnsupportedOperation. It is the cheap way to run cursors, views and
// the derived algorithms over data that already lives in a slice.
type SliceList[T Scalar] struct {
	elems   []T
	version uint64
}

// WrapSlice wraps elems without copying. The caller keeps ownership of the
// slice; writes through the list are visible in it.
func WrapSlice[T Scalar](elems []T) *SliceList[T] {
	return &SliceList[T]{elems: elems}
}

func (l *SliceList[T]) Len() int {
	return len(l.elems)
}

func (l *SliceList[T]) At(i int) T {
	checkIndex(i, len(l.elems))
	return l.elems[i]
}

func (l *SliceList[T]) SetAt(i int, v T) T {
	checkIndex(i, len(l.elems))
	l.version++
	old := l.elems[i]
	l.elems[i] = v
	return old
}

// InsertAt always panics: a SliceList is fixed-size.
func (l *SliceList[T]) InsertAt(int, T) {
	panic(fmt.Errorf("%w: InsertAt on a fixed-size list", ErrUnsupportedOperation))
}

// RemoveAt always panics: a SliceList is fixed-size.
func (l *SliceList[T]) RemoveAt(int) T {
	panic(fmt.Errorf("%w: RemoveAt on a fixed-size list", ErrUnsupportedOperation))
}

func (l *SliceList[T]) Version() uint64 {
	return l.version
}

func (l *SliceList[T]) IndexOf(v T) int     { return IndexOf[T](l, v) }
func (l *SliceList[T]) LastIndexOf(v T) int { return LastIndexOf[T](l, v) }

func (l *SliceList[T]) Equal(other Sequence[T]) bool { return Equal[T](l, other) }
func (l *SliceList[T]) Hash() uint64                 { return Hash[T](l) }
func (l *SliceList[T]) String() string               { return Format[T](l) }

// ToSlice returns a copy of the wrapped slice.
func (l *SliceList[T]) ToSlice() []T {
	return ToSlice[T](l)
}

// Cursor returns a fail-fast cursor positioned before the first element.
func (l *SliceList[T]) Cursor() *Cursor[T] {
	return NewCursor[T](l, 0)
}

// SubList returns a live view of the range [from, to).
func (l *SliceList[T]) SubList(from, to int) *SubList[T] {
	return NewSubList[T](l, from, to)
}
