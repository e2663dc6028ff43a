package scalarseq

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitList is a List[bool] that stores one element per bit instead of one
// per byte. It implements the same contract as ArrayList[bool] — including
// cursors and sub-list views — with an eighth of the memory.
type BitList struct {
	bits    *bitset.BitSet
	size    int
	version uint64
}

// NewBitList creates an empty boolean list with DefaultCapacity.
func NewBitList() *BitList {
	return NewBitListWithCapacity(DefaultCapacity)
}

// NewBitListWithCapacity creates an empty boolean list with the given
// initial capacity in bits. It panics with ErrNegativeCapacity if capacity
// is negative.
func NewBitListWithCapacity(capacity int) *BitList {
	if capacity < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity))
	}
	return &BitList{bits: bitset.New(uint(capacity))}
}

// NewBitListFromSlice creates a boolean list containing a copy of src.
func NewBitListFromSlice(src []bool) *BitList {
	return &BitList{bits: bitsFromSlice(src), size: len(src)}
}

func bitsFromSlice(src []bool) *bitset.BitSet {
	bits := bitset.New(uint(len(src)))
	for i, v := range src {
		bits.SetTo(uint(i), v)
	}
	return bits
}

// NewBitListFromSequence creates a boolean list containing the elements of
// src in src's iteration order. It panics with ErrNilSequence if src is
// nil.
func NewBitListFromSequence(src Sequence[bool]) *BitList {
	if src == nil {
		panic(ErrNilSequence)
	}
	n := src.Len()
	l := NewBitListWithCapacity(n)
	for i := 0; i < n; i++ {
		l.bits.SetTo(uint(i), src.At(i))
	}
	l.size = n
	return l
}

func (l *BitList) Len() int {
	return l.size
}

func (l *BitList) At(i int) bool {
	checkIndex(i, l.size)
	return l.bits.Test(uint(i))
}

func (l *BitList) SetAt(i int, v bool) bool {
	checkIndex(i, l.size)
	l.version++
	old := l.bits.Test(uint(i))
	l.bits.SetTo(uint(i), v)
	return old
}

// Add appends v to the end of the list.
func (l *BitList) Add(v bool) {
	l.InsertAt(l.size, v)
}

func (l *BitList) InsertAt(i int, v bool) {
	checkInsertIndex(i, l.size)
	l.version++
	l.bits.InsertAt(uint(i))
	l.bits.SetTo(uint(i), v)
	l.size++
}

func (l *BitList) RemoveAt(i int) bool {
	checkIndex(i, l.size)
	l.version++
	old := l.bits.Test(uint(i))
	l.bits.DeleteAt(uint(i))
	l.size--
	return old
}

// Clear removes all elements.
func (l *BitList) Clear() {
	l.version++
	l.bits.ClearAll()
	l.size = 0
}

// InsertAll inserts every element of src at index i. The empty-source
// no-op contract of List.InsertAll applies.
func (l *BitList) InsertAll(i int, src Sequence[bool]) bool {
	return InsertAll[bool](l, i, src)
}

// AddAll appends every element of src and reports whether anything was
// added.
func (l *BitList) AddAll(src Sequence[bool]) bool {
	if src == nil {
		panic(ErrNilSequence)
	}
	return l.InsertAll(l.size, src)
}

func (l *BitList) Version() uint64 {
	return l.version
}

func (l *BitList) IndexOf(v bool) int     { return IndexOf[bool](l, v) }
func (l *BitList) LastIndexOf(v bool) int { return LastIndexOf[bool](l, v) }

func (l *BitList) Equal(other Sequence[bool]) bool { return Equal[bool](l, other) }
func (l *BitList) Hash() uint64                    { return Hash[bool](l) }
func (l *BitList) String() string                  { return Format[bool](l) }

// ToSlice returns a copy of the elements as a []bool.
func (l *BitList) ToSlice() []bool {
	return ToSlice[bool](l)
}

// Cursor returns a fail-fast cursor positioned before the first element.
func (l *BitList) Cursor() *Cursor[bool] {
	return NewCursor[bool](l, 0)
}

// CursorAt returns a fail-fast cursor positioned before index start.
func (l *BitList) CursorAt(start int) *Cursor[bool] {
	return NewCursor[bool](l, start)
}

// SubList returns a live view of the range [from, to).
func (l *BitList) SubList(from, to int) *SubList[bool] {
	return NewSubList[bool](l, from, to)
}
