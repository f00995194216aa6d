package fastset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// FromSlice builds a Set from values, sizing the bound to the maximum
// input. An empty input yields a minimal-bound empty set. Values at or past
// MaxCapacity are refused by Insert and therefore dropped.
func FromSlice(values []uint32) *Set {
	bound := uint32(0)
	for _, v := range values {
		if v > bound && v < MaxCapacity {
			bound = v
		}
	}
	s := WithMax(bound)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// FromMap builds a Set from the keys of a hash-set.
func FromMap(m map[uint32]struct{}) *Set {
	bound := uint32(0)
	for v := range m {
		if v > bound && v < MaxCapacity {
			bound = v
		}
	}
	s := WithMax(bound)
	for v := range m {
		s.Insert(v)
	}
	return s
}

// FromSeq builds a Set from an iterator. The sequence is consumed once;
// the bound grows as values arrive.
func FromSeq(seq iter.Seq[uint32]) *Set {
	s := WithMax(0)
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// FromRoaring builds a Set from a roaring bitmap, sizing the bound to the
// bitmap's maximum.
func FromRoaring(rb *roaring.Bitmap) *Set {
	if rb == nil || rb.IsEmpty() {
		return WithMax(0)
	}
	bound := rb.Maximum()
	if bound >= MaxCapacity {
		bound = MaxCapacity - 1
	}
	s := WithMax(bound)
	it := rb.Iterator()
	for it.HasNext() {
		s.Insert(it.Next())
	}
	return s
}

// ToMap returns the members as a hash-set.
func (s *Set) ToMap() map[uint32]struct{} {
	m := make(map[uint32]struct{}, len(s.elements))
	for _, v := range s.elements {
		m[v] = struct{}{}
	}
	return m
}

// ToRoaring returns the members as a fresh roaring bitmap.
func (s *Set) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(s.elements)
	return rb
}
