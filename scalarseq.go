// Package scalarseq implements mutable, resizable, random-access sequences
// of fixed-width scalar elements (booleans, sized integers, floats), with
// list semantics equivalent to a general-purpose ordered collection but
// without wrapping each element in an interface value.
//
// The package is built around three capability interfaces: Sequence
// (read-only random access), MutableSequence (in-place replacement) and
// List (resizing). The shared algorithmic layer (Equal, Hash, Format,
// IndexOf, InsertAll, ...) is implemented once against the narrowest
// capability that suffices, so read-only types get it for free.
//
// Lists are not safe for concurrent use. Every structural mutation bumps a
// per-list version counter; cursors and sub-list views snapshot the counter
// and panic with ErrConcurrentModification the first time they are used
// after the counter diverged, instead of proceeding with corrupted index
// math.
package scalarseq

import "golang.org/x/exp/constraints"

// Scalar is the closed set of fixed-width element types a sequence can
// hold. It is deliberately restricted to explicitly sized types so that the
// binary snapshot format is platform independent.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// OrderedScalar is the subset of Scalar with a total order.
type OrderedScalar interface {
	Scalar
	constraints.Ordered
}

// Sequence is a read-only random-access sequence of scalars.
type Sequence[T Scalar] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. It panics with ErrIndexOutOfRange
	// if i is not in [0, Len()).
	At(i int) T
}

// MutableSequence is a Sequence whose elements can be replaced in place.
type MutableSequence[T Scalar] interface {
	Sequence[T]
	// SetAt replaces the element at index i and returns the previous
	// element. It panics with ErrIndexOutOfRange if i is not in [0, Len()).
	SetAt(i int, v T) T
}

// List is a resizable MutableSequence. All implementations in this package
// (ArrayList, BitList, SubList, SliceList) satisfy it.
type List[T Scalar] interface {
	MutableSequence[T]
	// InsertAt inserts v at index i, shifting subsequent elements right. It
	// panics with ErrInsertionIndexOutOfRange if i is not in [0, Len()].
	InsertAt(i int, v T)
	// RemoveAt removes and returns the element at index i, shifting
	// subsequent elements left. It panics with ErrIndexOutOfRange if i is
	// not in [0, Len()).
	RemoveAt(i int) T
	// Version returns the structural version counter. It increases on every
	// structural mutation (and, over-cautiously, on SetAt); stale cursors
	// and views detect mutations by comparing it to a snapshot.
	Version() uint64
}

var (
	_ = []List[int32]{(*ArrayList[int32])(nil), (*SubList[int32])(nil), (*SliceList[int32])(nil)}
	_ = []List[bool]{(*BitList)(nil), (*ArrayList[bool])(nil)}
)
