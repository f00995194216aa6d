package fastset

import "iter"

// Membership is the minimal capability a collection needs to take part in
// set algebra: membership testing, element iteration, and the largest held
// value. *Set implements it, as do the MapSet and RoaringSet adapters, so a
// Set can be combined with a plain hash-set or a roaring bitmap without
// conversion.
//
// Elements must yield each member exactly once.
type Membership interface {
	Contains(v uint32) bool
	Elements() iter.Seq[uint32]
	Max() (uint32, bool)
}

var _ Membership = (*Set)(nil)

// resultBound sizes a fresh result set to the larger of the two operands'
// bounds.
func (s *Set) resultBound(other Membership) uint32 {
	bound := s.max
	if m, ok := other.Max(); ok && m > bound {
		bound = m
	}
	return bound
}

// Union returns a new Set with every member of s and other.
func (s *Set) Union(other Membership) *Set {
	result := WithMax(s.resultBound(other))
	for _, v := range s.elements {
		result.Insert(v)
	}
	for v := range other.Elements() {
		result.Insert(v)
	}
	return result
}

// Intersection returns a new Set with the members present in both s and
// other.
func (s *Set) Intersection(other Membership) *Set {
	result := WithMax(s.resultBound(other))
	for _, v := range s.elements {
		if other.Contains(v) {
			result.Insert(v)
		}
	}
	return result
}

// Difference returns a new Set with the members of s that are not in other.
func (s *Set) Difference(other Membership) *Set {
	result := WithMax(s.resultBound(other))
	for _, v := range s.elements {
		if !other.Contains(v) {
			result.Insert(v)
		}
	}
	return result
}

// SymmetricDifference returns a new Set with the members present in exactly
// one of s and other.
func (s *Set) SymmetricDifference(other Membership) *Set {
	result := WithMax(s.resultBound(other))
	for _, v := range s.elements {
		if !other.Contains(v) {
			result.Insert(v)
		}
	}
	for v := range other.Elements() {
		if !s.Contains(v) {
			result.Insert(v)
		}
	}
	return result
}

// IsSubset returns true if every member of s is a member of other.
func (s *Set) IsSubset(other Membership) bool {
	for _, v := range s.elements {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IsSuperset returns true if every member of other is a member of s.
func (s *Set) IsSuperset(other Membership) bool {
	for v := range other.Elements() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// IsDisjoint returns true if s and other have no members in common.
func (s *Set) IsDisjoint(other Membership) bool {
	for _, v := range s.elements {
		if other.Contains(v) {
			return false
		}
	}
	return true
}

// UnionWith replaces s with the union of s and other. This is sugar over a
// full recompute, not a fused in-place merge.
func (s *Set) UnionWith(other Membership) {
	*s = *s.Union(other)
}

// IntersectWith replaces s with the intersection of s and other.
func (s *Set) IntersectWith(other Membership) {
	*s = *s.Intersection(other)
}

// DifferenceWith replaces s with the difference of s and other.
func (s *Set) DifferenceWith(other Membership) {
	*s = *s.Difference(other)
}

// SymmetricDifferenceWith replaces s with the symmetric difference of s and
// other.
func (s *Set) SymmetricDifferenceWith(other Membership) {
	*s = *s.SymmetricDifference(other)
}
