package fastset

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeSet(t *testing.T, lo, hi uint32) *Set {
	t.Helper()
	s := WithMax(hi)
	for v := lo; v <= hi; v++ {
		require.True(t, s.Insert(v))
	}
	return s
}

func TestSet_Algebra(t *testing.T) {
	a := rangeSet(t, 1, 5)
	b := rangeSet(t, 4, 8)

	t.Run("Union", func(t *testing.T) {
		u := a.Union(b)
		assert.Equal(t, 8, u.Len())
		for v := uint32(1); v <= 8; v++ {
			assert.True(t, u.Contains(v))
		}
	})

	t.Run("Intersection", func(t *testing.T) {
		i := a.Intersection(b)
		assert.Equal(t, 2, i.Len())
		assert.True(t, i.Contains(4))
		assert.True(t, i.Contains(5))
	})

	t.Run("Difference", func(t *testing.T) {
		d := a.Difference(b)
		assert.Equal(t, 3, d.Len())
		for v := uint32(1); v <= 3; v++ {
			assert.True(t, d.Contains(v))
		}
	})

	t.Run("SymmetricDifference", func(t *testing.T) {
		sd := a.SymmetricDifference(b)
		assert.Equal(t, 6, sd.Len())
		assert.False(t, sd.Contains(4))
		assert.False(t, sd.Contains(5))
	})

	t.Run("InclusionExclusion", func(t *testing.T) {
		// |A ∪ B| == |A| + |B| - |A ∩ B|
		u := a.Union(b)
		i := a.Intersection(b)
		assert.Equal(t, a.Len()+b.Len()-i.Len(), u.Len())
	})

	t.Run("DifferenceIntersectionPartition", func(t *testing.T) {
		// Difference and intersection partition A: each element of A is in
		// exactly one of the two.
		d := a.Difference(b)
		i := a.Intersection(b)
		require.Equal(t, a.Len(), d.Len()+i.Len())
		for v := range a.Elements() {
			inD, inI := d.Contains(v), i.Contains(v)
			assert.True(t, inD != inI, "element %d must be in exactly one part", v)
		}
	})

	t.Run("SymmetricDifferenceDecomposition", func(t *testing.T) {
		// A △ B == (A \ B) ∪ (B \ A)
		sd := a.SymmetricDifference(b)
		rebuilt := a.Difference(b).Union(b.Difference(a))
		assert.True(t, sd.Equal(rebuilt))
		assert.Equal(t, sd.Hash(), rebuilt.Hash())
	})

	t.Run("ResultBound", func(t *testing.T) {
		small := rangeSet(t, 0, 3)
		big := rangeSet(t, 90, 100)
		i := small.Intersection(big)
		assert.GreaterOrEqual(t, i.Capacity(), uint32(100), "result sized to the larger operand bound")
		assert.True(t, i.IsEmpty())
	})
}

func TestSet_Predicates(t *testing.T) {
	small := rangeSet(t, 1, 5)
	big := rangeSet(t, 1, 10)
	other := rangeSet(t, 6, 10)

	assert.True(t, small.IsSubset(big))
	assert.False(t, big.IsSubset(small))
	assert.True(t, big.IsSuperset(small))
	assert.False(t, small.IsSuperset(big))
	assert.True(t, small.IsDisjoint(other))
	assert.False(t, big.IsDisjoint(other))

	empty := WithMax(10)
	assert.True(t, empty.IsSubset(small))
	assert.True(t, empty.IsDisjoint(small))
	assert.True(t, small.IsSuperset(empty))
}

func TestSet_InPlaceVariants(t *testing.T) {
	t.Run("UnionWith", func(t *testing.T) {
		s := rangeSet(t, 1, 3)
		s.UnionWith(rangeSet(t, 3, 5))
		assert.Equal(t, 5, s.Len())
		checkInvariants(t, s)
	})

	t.Run("IntersectWith", func(t *testing.T) {
		s := rangeSet(t, 1, 5)
		s.IntersectWith(rangeSet(t, 4, 8))
		assert.Equal(t, 2, s.Len())
		checkInvariants(t, s)
	})

	t.Run("DifferenceWith", func(t *testing.T) {
		s := rangeSet(t, 1, 5)
		s.DifferenceWith(rangeSet(t, 4, 8))
		assert.Equal(t, 3, s.Len())
		checkInvariants(t, s)
	})

	t.Run("SymmetricDifferenceWith", func(t *testing.T) {
		s := rangeSet(t, 1, 5)
		s.SymmetricDifferenceWith(rangeSet(t, 4, 8))
		assert.Equal(t, 6, s.Len())
		checkInvariants(t, s)
	})
}

func TestSet_AlgebraWithAdapters(t *testing.T) {
	t.Run("MapSet", func(t *testing.T) {
		s := rangeSet(t, 1, 5)
		m := MapSet{4: {}, 5: {}, 6: {}}

		i := s.Intersection(m)
		assert.Equal(t, 2, i.Len())

		u := s.Union(m)
		assert.Equal(t, 6, u.Len())
		assert.GreaterOrEqual(t, u.Capacity(), uint32(6))

		assert.True(t, rangeSet(t, 4, 5).IsSubset(m))
	})

	t.Run("RoaringSet", func(t *testing.T) {
		s := rangeSet(t, 1, 5)
		rb := roaring.BitmapOf(4, 5, 6, 1000)
		rs := NewRoaringSet(rb)

		i := s.Intersection(rs)
		assert.Equal(t, 2, i.Len())

		u := s.Union(rs)
		assert.Equal(t, 7, u.Len())
		assert.GreaterOrEqual(t, u.Capacity(), uint32(1000))

		d := s.Difference(rs)
		assert.Equal(t, 3, d.Len())

		m, ok := rs.Max()
		require.True(t, ok)
		assert.Equal(t, uint32(1000), m)
	})

	t.Run("EmptyAdapters", func(t *testing.T) {
		s := rangeSet(t, 1, 3)

		_, ok := MapSet{}.Max()
		assert.False(t, ok)
		_, ok = NewRoaringSet(nil).Max()
		assert.False(t, ok)

		assert.True(t, s.IsDisjoint(MapSet{}))
		assert.Equal(t, 3, s.Union(NewRoaringSet(nil)).Len())
	})
}

func TestSet_AlgebraLawsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		a := WithMax(0)
		b := WithMax(0)
		for i := 0; i < 200; i++ {
			a.Insert(uint32(rng.Intn(300)))
			b.Insert(uint32(rng.Intn(300)))
		}

		u := a.Union(b)
		i := a.Intersection(b)
		require.Equal(t, a.Len()+b.Len()-i.Len(), u.Len(), "trial %d", trial)

		sd := a.SymmetricDifference(b)
		rebuilt := a.Difference(b).Union(b.Difference(a))
		require.True(t, sd.Equal(rebuilt), "trial %d", trial)
	}
}
