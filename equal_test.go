package fastset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Equal(t *testing.T) {
	t.Run("OrderIndependent", func(t *testing.T) {
		a := FromSlice([]uint32{1, 2, 3})
		b := FromSlice([]uint32{3, 2, 1})

		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("DifferentMembers", func(t *testing.T) {
		a := FromSlice([]uint32{1, 2, 3})
		b := FromSlice([]uint32{1, 2, 4})
		c := FromSlice([]uint32{1, 2})

		assert.False(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("BoundIrrelevant", func(t *testing.T) {
		a := WithMax(10)
		b := WithMax(10000)
		a.InsertAll(1, 2)
		b.InsertAll(1, 2)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash(), "spare capacity must not change the hash")
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, WithMax(5).Equal(WithMax(500)))
	})
}

func TestSet_EqualMembership(t *testing.T) {
	s := FromSlice([]uint32{42, 100})

	assert.True(t, s.EqualMembership(MapSet{42: {}, 100: {}}))
	assert.False(t, s.EqualMembership(MapSet{42: {}}))
	assert.False(t, s.EqualMembership(MapSet{42: {}, 100: {}, 7: {}}))
	assert.False(t, s.EqualMembership(MapSet{42: {}, 99: {}}))
}

func TestSet_HashConsistentWithEqual(t *testing.T) {
	// Sets built by inserting the same values in different orders, with
	// interleaved removals, must compare equal and hash equal even though
	// their dense lists end up in different storage orders.
	rng := rand.New(rand.NewSource(3))
	values := rng.Perm(500)

	a := WithMax(0)
	for _, v := range values {
		a.Insert(uint32(v))
	}

	b := WithMax(0)
	for i := len(values) - 1; i >= 0; i-- {
		b.Insert(uint32(values[i]))
	}
	// Churn b so its element order diverges further.
	for v := uint32(0); v < 100; v++ {
		require.True(t, b.Remove(v))
	}
	for v := uint32(0); v < 100; v++ {
		require.True(t, b.Insert(v))
	}

	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Remove(250)
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}
