package scalarseq

import json "github.com/goccy/go-json"

// A list marshals as a plain JSON array of its live elements.

func (l *ArrayList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.elems[:l.size])
}

// UnmarshalJSON replaces the list's contents with the decoded array. This
// is a structural change: the version is bumped and outstanding cursors and
// views go stale.
func (l *ArrayList[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	l.version++
	l.elems = elems
	l.size = len(elems)
	return nil
}

func (l *BitList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON replaces the list's contents with the decoded array,
// bumping the version.
func (l *BitList) UnmarshalJSON(data []byte) error {
	var elems []bool
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	l.version++
	l.bits = bitsFromSlice(elems)
	l.size = len(elems)
	return nil
}
