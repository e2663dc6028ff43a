package scalarseq

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrNegativeCapacity         = errors.New("negative capacity")
	ErrNilSequence              = errors.New("source sequence is nil")
	ErrConcurrentModification   = errors.New("sequence was structurally modified through another path")
	ErrNoSuchElement            = errors.New("no element in the requested direction")
	ErrNoCurrentElement         = errors.New("no current element: call Next or Prev first")
	ErrInvalidRange             = errors.New("invalid index range")
	ErrUnsupportedOperation     = errors.New("unsupported operation")

	ErrUnreachable = errors.New("unreachable")
)

// checkIndex validates a read/write/remove index, valid range [0, size).
func checkIndex(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Errorf("%w: index %d, valid range [0,%d)", ErrIndexOutOfRange, i, size))
	}
}

// checkInsertIndex validates an insertion index, valid range [0, size].
func checkInsertIndex(i, size int) {
	if i < 0 || i > size {
		panic(fmt.Errorf("%w: index %d, valid range [0,%d]", ErrInsertionIndexOutOfRange, i, size))
	}
}
