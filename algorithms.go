package scalarseq

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Equal reports whether a and b hold pairwise-equal elements in the same
// order.
func Equal[T Scalar](a, b Sequence[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash of s, folding h = 31*h + bits(e)
// over the elements so that equal sequences hash equally regardless of
// their concrete representation.
func Hash[T Scalar](s Sequence[T]) uint64 {
	h := uint64(1)
	for i, n := 0, s.Len(); i < n; i++ {
		h = 31*h + elemBits(s.At(i))
	}
	return h
}

func elemBits[T Scalar](v T) uint64 {
	switch v := any(v).(type) {
	case bool:
		if v {
			return 1231
		}
		return 1237
	case int8:
		return uint64(int64(v))
	case int16:
		return uint64(int64(v))
	case int32:
		return uint64(int64(v))
	case int64:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic(ErrUnreachable)
}

// Format renders s as "[e0, e1, ..., en-1]".
func Format[T Scalar](s Sequence[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := 0, s.Len(); i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", s.At(i))
	}
	b.WriteByte(']')
	return b.String()
}

// IndexOf returns the index of the first element equal to v, or -1 if
// there is none.
func IndexOf[T Scalar](s Sequence[T], v T) int {
	for i, n := 0, s.Len(); i < n; i++ {
		if s.At(i) == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1 if
// there is none.
func LastIndexOf[T Scalar](s Sequence[T], v T) int {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i) == v {
			return i
		}
	}
	return -1
}

// ToSlice copies the elements of s into a fresh slice.
func ToSlice[T Scalar](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// InsertAll inserts every element of src into dst starting at index, in
// src's iteration order, one InsertAt at a time. It reports whether
// anything was inserted: an empty source is a complete no-op, with no
// version bump and no index validation. Implementations with a bulk fast
// path (ArrayList) override this with a single-shift variant.
func InsertAll[T Scalar](dst List[T], index int, src Sequence[T]) bool {
	if dst == nil || src == nil {
		panic(ErrNilSequence)
	}
	n := src.Len()
	if n == 0 {
		return false
	}
	for k := 0; k < n; k++ {
		dst.InsertAt(index+k, src.At(k))
	}
	return true
}

// Sort sorts l in ascending order. Reordering is a structural change: the
// version is bumped and outstanding cursors and views go stale.
func Sort[T OrderedScalar](l *ArrayList[T]) {
	l.version++
	slices.Sort(l.elems[:l.size])
}
