package scalarseq

import "fmt"

// SubList is a live view of a contiguous range of a backing list. It owns
// no buffer: every operation translates the index by the view's offset and
// delegates to the backing list. A SubList is itself a full List and can
// be sub-viewed further; the translations compose.
//
// The view caches the backing list's version at construction and re-syncs
// it after every mutation performed through the view. Before every
// operation the cache is compared with the backing list's live version;
// the view panics with ErrConcurrentModification — and is permanently
// stale — once the backing list has been structurally modified through any
// other path.
type SubList[T Scalar] struct {
	backing List[T]
	offset  int
	limit   int
	version uint64 // the view's own counter, watched by its cursors
	backVer uint64 // snapshot of the backing list's version
}

// NewSubList returns a view of backing restricted to [from, to). It panics
// with ErrIndexOutOfRange if the range exceeds [0, backing.Len()], with
// ErrInvalidRange if from > to, and with ErrNilSequence if backing is nil.
func NewSubList[T Scalar](backing List[T], from, to int) *SubList[T] {
	if backing == nil {
		panic(ErrNilSequence)
	}
	if size := backing.Len(); from < 0 || to > size {
		panic(fmt.Errorf("%w: range [%d,%d), valid bounds [0,%d]", ErrIndexOutOfRange, from, to, size))
	}
	if from > to {
		panic(fmt.Errorf("%w: fromIndex %d greater than toIndex %d", ErrInvalidRange, from, to))
	}
	return &SubList[T]{
		backing: backing,
		offset:  from,
		limit:   to - from,
		backVer: backing.Version(),
	}
}

func (s *SubList[T]) assertBackingUnmodified() {
	if s.backVer != s.backing.Version() {
		panic(ErrConcurrentModification)
	}
}

func (s *SubList[T]) resync() {
	s.backVer = s.backing.Version()
}

func (s *SubList[T]) Len() int {
	s.assertBackingUnmodified()
	return s.limit
}

func (s *SubList[T]) At(i int) T {
	checkIndex(i, s.limit)
	s.assertBackingUnmodified()
	return s.backing.At(i + s.offset)
}

func (s *SubList[T]) SetAt(i int, v T) T {
	checkIndex(i, s.limit)
	s.assertBackingUnmodified()
	old := s.backing.SetAt(i+s.offset, v)
	s.version++
	s.resync()
	return old
}

func (s *SubList[T]) InsertAt(i int, v T) {
	checkInsertIndex(i, s.limit)
	s.assertBackingUnmodified()
	s.backing.InsertAt(i+s.offset, v)
	s.limit++
	s.version++
	s.resync()
}

func (s *SubList[T]) RemoveAt(i int) T {
	checkIndex(i, s.limit)
	s.assertBackingUnmodified()
	old := s.backing.RemoveAt(i + s.offset)
	s.limit--
	s.version++
	s.resync()
	return old
}

func (s *SubList[T]) Version() uint64 {
	return s.version
}

// Add appends v to the end of the view; the element lands at position
// offset+limit of the backing list.
func (s *SubList[T]) Add(v T) {
	s.InsertAt(s.Len(), v)
}

// InsertAll inserts every element of src at index i, one element at a
// time so the view's limit and snapshot stay consistent throughout. The
// empty-source no-op contract of List.InsertAll applies.
func (s *SubList[T]) InsertAll(i int, src Sequence[T]) bool {
	return InsertAll[T](s, i, src)
}

func (s *SubList[T]) IndexOf(v T) int     { return IndexOf[T](s, v) }
func (s *SubList[T]) LastIndexOf(v T) int { return LastIndexOf[T](s, v) }

func (s *SubList[T]) Equal(other Sequence[T]) bool { return Equal[T](s, other) }
func (s *SubList[T]) Hash() uint64                 { return Hash[T](s) }
func (s *SubList[T]) String() string               { return Format[T](s) }

// ToSlice returns a copy of the elements visible through the view.
func (s *SubList[T]) ToSlice() []T {
	return ToSlice[T](s)
}

// Cursor returns a fail-fast cursor over the view positioned before its
// first element.
func (s *SubList[T]) Cursor() *Cursor[T] {
	return NewCursor[T](s, 0)
}

// CursorAt returns a fail-fast cursor over the view positioned before
// index start.
func (s *SubList[T]) CursorAt(start int) *Cursor[T] {
	return NewCursor[T](s, start)
}

// SubList returns a view of a range of this view.
func (s *SubList[T]) SubList(from, to int) *SubList[T] {
	return NewSubList[T](s, from, to)
}
