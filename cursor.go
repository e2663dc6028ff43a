package scalarseq

import "fmt"

// Cursor is a fail-fast bidirectional iterator over a List. It occupies
// the positions between elements, from 0 (before the first element) to
// Len() (after the last one), and supports in-place insertion, removal and
// replacement.
//
// The cursor snapshots the list's version when created; every operation
// first compares the snapshot to the list's live version and panics with
// ErrConcurrentModification on mismatch, so a cursor becomes permanently
// unusable the moment the list is structurally modified through another
// path. The cursor's own Add, Remove and Set re-sync the snapshot after
// mutating.
type Cursor[T Scalar] struct {
	list     List[T]
	next     int
	lastRet  int // index returned by the latest Next/Prev, -1 when none
	expected uint64
}

// NewCursor returns a cursor over list positioned before index start. It
// panics with ErrIndexOutOfRange if start is not in [0, list.Len()] and
// with ErrNilSequence if list is nil.
func NewCursor[T Scalar](list List[T], start int) *Cursor[T] {
	if list == nil {
		panic(ErrNilSequence)
	}
	if size := list.Len(); start < 0 || start > size {
		panic(fmt.Errorf("%w: index %d, valid range [0,%d]", ErrIndexOutOfRange, start, size))
	}
	return &Cursor[T]{
		list:     list,
		next:     start,
		lastRet:  -1,
		expected: list.Version(),
	}
}

func (c *Cursor[T]) assertUnmodified() {
	if c.expected != c.list.Version() {
		panic(ErrConcurrentModification)
	}
}

func (c *Cursor[T]) resync() {
	c.expected = c.list.Version()
}

// HasNext reports whether an element exists ahead of the cursor.
func (c *Cursor[T]) HasNext() bool {
	c.assertUnmodified()
	return c.next < c.list.Len()
}

// HasPrev reports whether an element exists behind the cursor.
func (c *Cursor[T]) HasPrev() bool {
	c.assertUnmodified()
	return c.next > 0
}

// NextIndex returns the index of the element Next would return.
func (c *Cursor[T]) NextIndex() int {
	c.assertUnmodified()
	return c.next
}

// PrevIndex returns the index of the element Prev would return.
func (c *Cursor[T]) PrevIndex() int {
	c.assertUnmodified()
	return c.next - 1
}

// Next returns the element ahead of the cursor and advances past it. It
// panics with ErrNoSuchElement when the cursor is at the end.
func (c *Cursor[T]) Next() T {
	if !c.HasNext() {
		panic(fmt.Errorf("%w: forward", ErrNoSuchElement))
	}
	v := c.list.At(c.next)
	c.lastRet = c.next
	c.next++
	return v
}

// Prev returns the element behind the cursor and retreats before it. It
// panics with ErrNoSuchElement when the cursor is at the beginning.
func (c *Cursor[T]) Prev() T {
	if !c.HasPrev() {
		panic(fmt.Errorf("%w: backward", ErrNoSuchElement))
	}
	v := c.list.At(c.next - 1)
	c.next--
	c.lastRet = c.next
	return v
}

// Add inserts v before the cursor and advances the cursor past it, so a
// subsequent Prev would return v. It clears the current element and
// re-syncs the version snapshot.
func (c *Cursor[T]) Add(v T) {
	c.assertUnmodified()
	c.list.InsertAt(c.next, v)
	c.next++
	c.lastRet = -1
	c.resync()
}

// Remove deletes and returns the element last returned by Next or Prev.
// After a Next the cursor moves back one position to stay behind the
// removed slot; after a Prev it stays put because the removed element was
// ahead of it. It panics with ErrNoCurrentElement when there is no current
// element.
func (c *Cursor[T]) Remove() T {
	c.assertUnmodified()
	if c.lastRet == -1 {
		panic(ErrNoCurrentElement)
	}
	v := c.list.RemoveAt(c.lastRet)
	if c.lastRet != c.next {
		c.next--
	}
	c.lastRet = -1
	c.resync()
	return v
}

// Set replaces the element last returned by Next or Prev and returns the
// previous value. The cursor position is unchanged. It panics with
// ErrNoCurrentElement when there is no current element.
func (c *Cursor[T]) Set(v T) T {
	c.assertUnmodified()
	if c.lastRet == -1 {
		panic(ErrNoCurrentElement)
	}
	old := c.list.SetAt(c.lastRet, v)
	c.resync()
	return old
}
