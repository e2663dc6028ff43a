package scalarseq

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The snapshot format is deliberately narrow: the capacity, then the
// number of live elements, then the live elements in order, all big-endian.
// Restoring recreates a buffer of the stored capacity and refills the live
// prefix. Scalar is restricted to explicitly sized types so the element
// encoding is platform independent.

// Snapshot writes a binary snapshot of the list to w.
func (l *ArrayList[T]) Snapshot(w io.Writer) error {
	header := [2]uint64{uint64(len(l.elems)), uint64(l.size)}
	if err := binary.Write(w, binary.BigEndian, header[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, l.elems[:l.size])
}

// RestoreArrayList reads a snapshot written by Snapshot and rebuilds the
// list, capacity included.
func RestoreArrayList[T Scalar](r io.Reader) (*ArrayList[T], error) {
	var header [2]uint64
	if err := binary.Read(r, binary.BigEndian, header[:]); err != nil {
		return nil, err
	}
	capacity, size := int(header[0]), int(header[1])
	if capacity < 0 || size < 0 || size > capacity {
		return nil, fmt.Errorf("corrupt snapshot: capacity %d, size %d", capacity, size)
	}
	l := NewWithCapacity[T](capacity)
	if err := binary.Read(r, binary.BigEndian, l.elems[:size]); err != nil {
		return nil, err
	}
	l.size = size
	return l, nil
}
