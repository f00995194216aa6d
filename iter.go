package fastset

import "iter"

// Elements returns an iterator over the members. Order is the internal
// storage order, which changes as elements are removed; treat it as
// arbitrary. The set must not be mutated during iteration.
func (s *Set) Elements() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, v := range s.elements {
			if !yield(v) {
				return
			}
		}
	}
}

// Ascending returns an iterator over the members in increasing order by
// scanning the presence bitmap. Cost is proportional to the bound, not the
// cardinality.
func (s *Set) Ascending() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v, ok := s.presence.NextSet(0); ok; v, ok = s.presence.NextSet(v + 1) {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes and yields members until the set
// is empty. Stopping early leaves the remaining members in place. Removal
// skips the per-element extremum rescan — a set headed for empty has no
// extremes to maintain — and the trackers are refreshed once if iteration
// stops early, keeping a full drain linear.
//
// There is deliberately no iterator that mutates stored values in place:
// rewriting a member through an iterator would desync the presence bitmap
// and page table. Model value changes as Remove(old) + Insert(new).
func (s *Set) Drain() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for len(s.elements) > 0 {
			last := len(s.elements) - 1
			v := s.elements[last]
			s.elements = s.elements[:last]
			s.presence.Unset(v)
			s.pages.Clear(v)
			if !yield(v) {
				s.refreshExtremes()
				return
			}
		}
	}
}

// AppendTo appends the members to dst and returns the extended slice.
func (s *Set) AppendTo(dst []uint32) []uint32 {
	return append(dst, s.elements...)
}

// ToSlice returns the members as a fresh slice in internal storage order.
func (s *Set) ToSlice() []uint32 {
	return s.AppendTo(make([]uint32, 0, len(s.elements)))
}
