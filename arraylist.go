package scalarseq

import "fmt"

// DefaultCapacity is the initial capacity of lists created by New.
const DefaultCapacity = 8

// ArrayList is a List backed by a single contiguous buffer. The buffer is
// owned exclusively by the list; its capacity never drops below the live
// element count and the live prefix always holds the elements in iteration
// order. Appending is amortized O(1): the buffer grows by a factor of 1.5
// plus one.
type ArrayList[T Scalar] struct {
	elems   []T // len(elems) is the capacity, the live prefix is [0:size]
	size    int
	version uint64
}

// New creates an empty list with DefaultCapacity.
func New[T Scalar]() *ArrayList[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity creates an empty list with the given initial capacity. It
// panics with ErrNegativeCapacity if capacity is negative.
func NewWithCapacity[T Scalar](capacity int) *ArrayList[T] {
	if capacity < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity))
	}
	return &ArrayList[T]{elems: make([]T, capacity)}
}

// NewFromSlice creates a list containing a copy of src. A nil slice yields
// an empty list.
func NewFromSlice[T Scalar](src []T) *ArrayList[T] {
	l := NewWithCapacity[T](len(src))
	copy(l.elems, src)
	l.size = len(src)
	return l
}

// NewFromSequence creates a list containing the elements of src in src's
// iteration order. It panics with ErrNilSequence if src is nil.
func NewFromSequence[T Scalar](src Sequence[T]) *ArrayList[T] {
	if src == nil {
		panic(ErrNilSequence)
	}
	n := src.Len()
	l := NewWithCapacity[T](n)
	for i := 0; i < n; i++ {
		l.elems[i] = src.At(i)
	}
	l.size = n
	return l
}

func (l *ArrayList[T]) Len() int {
	return l.size
}

func (l *ArrayList[T]) At(i int) T {
	checkIndex(i, l.size)
	return l.elems[i]
}

func (l *ArrayList[T]) SetAt(i int, v T) T {
	checkIndex(i, l.size)
	l.version++
	old := l.elems[i]
	l.elems[i] = v
	return old
}

// Add appends v to the end of the list.
func (l *ArrayList[T]) Add(v T) {
	l.InsertAt(l.size, v)
}

func (l *ArrayList[T]) InsertAt(i int, v T) {
	checkInsertIndex(i, l.size)
	l.version++
	l.grow(l.size + 1)
	copy(l.elems[i+1:l.size+1], l.elems[i:l.size])
	l.elems[i] = v
	l.size++
}

func (l *ArrayList[T]) RemoveAt(i int) T {
	checkIndex(i, l.size)
	l.version++
	old := l.elems[i]
	copy(l.elems[i:], l.elems[i+1:l.size])
	l.size--
	return old
}

// Clear removes all elements. The capacity is kept; use TrimToSize to
// release it.
func (l *ArrayList[T]) Clear() {
	l.version++
	l.size = 0
}

// InsertAll inserts every element of src, in src's iteration order,
// starting at index i and shifting subsequent elements right. It reports
// whether anything was inserted: an empty source is a complete no-op, with
// no version bump and no index validation. It panics with ErrNilSequence
// if src is nil.
func (l *ArrayList[T]) InsertAll(i int, src Sequence[T]) bool {
	if src == nil {
		panic(ErrNilSequence)
	}
	n := src.Len()
	if n == 0 {
		return false
	}
	checkInsertIndex(i, l.size)
	l.version++
	l.grow(l.size + n)
	copy(l.elems[i+n:l.size+n], l.elems[i:l.size])
	for k := 0; k < n; k++ {
		l.elems[i+k] = src.At(k)
	}
	l.size += n
	return true
}

// AddAll appends every element of src and reports whether anything was
// added.
func (l *ArrayList[T]) AddAll(src Sequence[T]) bool {
	if src == nil {
		panic(ErrNilSequence)
	}
	return l.InsertAll(l.size, src)
}

// Cap returns the current capacity of the backing buffer.
func (l *ArrayList[T]) Cap() int {
	return len(l.elems)
}

// EnsureCapacity grows the backing buffer, if necessary, so that at least
// min elements fit without further growth. It always bumps the version,
// even when no growth happens.
func (l *ArrayList[T]) EnsureCapacity(min int) {
	l.version++
	l.grow(min)
}

// TrimToSize shrinks the capacity to exactly Len(). It always bumps the
// version, even when nothing shrinks.
func (l *ArrayList[T]) TrimToSize() {
	l.version++
	if l.size < len(l.elems) {
		elems := make([]T, l.size)
		copy(elems, l.elems[:l.size])
		l.elems = elems
	}
}

// Drain trims the backing buffer to exactly Len(), hands it to the caller
// without copying, and resets the list to empty.
func (l *ArrayList[T]) Drain() []T {
	l.TrimToSize()
	data := l.elems
	l.elems = []T{}
	l.size = 0
	return data
}

func (l *ArrayList[T]) Version() uint64 {
	return l.version
}

// grow enlarges the buffer to hold at least min elements without bumping
// the version; the callers do that.
func (l *ArrayList[T]) grow(min int) {
	if min <= len(l.elems) {
		return
	}
	newCap := len(l.elems)*3/2 + 1
	if newCap < min {
		newCap = min
	}
	elems := make([]T, newCap)
	copy(elems, l.elems[:l.size])
	l.elems = elems
}

func (l *ArrayList[T]) IndexOf(v T) int     { return IndexOf[T](l, v) }
func (l *ArrayList[T]) LastIndexOf(v T) int { return LastIndexOf[T](l, v) }

func (l *ArrayList[T]) Equal(other Sequence[T]) bool { return Equal[T](l, other) }
func (l *ArrayList[T]) Hash() uint64                 { return Hash[T](l) }
func (l *ArrayList[T]) String() string               { return Format[T](l) }

// ToSlice returns a copy of the live elements.
func (l *ArrayList[T]) ToSlice() []T {
	return ToSlice[T](l)
}

// Cursor returns a fail-fast cursor positioned before the first element.
func (l *ArrayList[T]) Cursor() *Cursor[T] {
	return NewCursor[T](l, 0)
}

// CursorAt returns a fail-fast cursor positioned before index start.
func (l *ArrayList[T]) CursorAt(start int) *Cursor[T] {
	return NewCursor[T](l, start)
}

// SubList returns a live view of the range [from, to).
func (l *ArrayList[T]) SubList(from, to int) *SubList[T] {
	return NewSubList[T](l, from, to)
}
