package fastset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSet_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("Empty", func(t *testing.T) {
		s := WithMax(100)
		_, ok := s.Random(rng)
		assert.False(t, ok)
	})

	t.Run("SingleElement", func(t *testing.T) {
		s := WithMax(100)
		s.Insert(42)
		v, ok := s.Random(rng)
		require.True(t, ok)
		assert.Equal(t, uint32(42), v)
	})

	t.Run("AlwaysAMember", func(t *testing.T) {
		s := FromSlice([]uint32{5, 10, 15, 20, 25})
		for i := 0; i < 1000; i++ {
			v, ok := s.Random(rng)
			require.True(t, ok)
			require.True(t, s.Contains(v), "Random returned non-member %d", v)
		}
	})

	t.Run("MemberAfterChurn", func(t *testing.T) {
		s := FromSlice([]uint32{1, 2, 3, 4, 5, 6, 7, 8})
		for i := 0; i < 1000; i++ {
			v, ok := s.Random(rng)
			require.True(t, ok)
			require.True(t, s.Remove(v))
			s.Insert(uint32(rng.Intn(1000)))
			if s.IsEmpty() {
				s.Insert(uint32(rng.Intn(1000)))
			}
		}
		checkInvariants(t, s)
	})
}

// TestSet_RandomUniformity draws from a fixed set and checks the empirical
// distribution against uniform with a chi-squared goodness-of-fit test. The
// RNG is seeded, so the test is deterministic.
func TestSet_RandomUniformity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const (
		members = 10_000
		draws   = 1_000_000
	)

	s := WithMax(members - 1)
	for v := uint32(0); v < members; v++ {
		require.True(t, s.Insert(v))
	}

	rng := rand.New(rand.NewSource(99))
	counts := make([]int, members)
	for i := 0; i < draws; i++ {
		v, ok := s.Random(rng)
		require.True(t, ok)
		counts[v]++
	}

	expected := float64(draws) / float64(members)
	statistic := 0.0
	for _, observed := range counts {
		diff := float64(observed) - expected
		statistic += diff * diff / expected
	}

	critical := distuv.ChiSquared{K: float64(members - 1)}.Quantile(0.99)
	assert.Less(t, statistic, critical,
		"chi-squared statistic %.2f exceeds the 0.99 critical value %.2f", statistic, critical)
}
