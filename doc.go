// Package fastset provides a specialized set container for uint32 values
// drawn from a dense, bounded universe, optimized for high-frequency
// insert/remove/contains/random-sample workloads.
//
// The container keeps three cooperating structures: a presence bitmap for
// O(1) membership tests, a compact element list that makes uniform random
// sampling O(1), and a lazily paged back-reference table that locates any
// present value inside the element list without paying an O(bound) eager
// allocation.
//
// # When to use it
//
//   - Tracking active indices into a parallel array
//   - Slot allocation in memory pools
//   - Membership tracking in iterative simulations where a uniformly random
//     live element must be sampled cheaply
//
// Memory cost scales with the maximum value stored, not the cardinality.
// For elements spread thinly over a huge range, use a hash-set or a roaring
// bitmap instead; the RoaringSet adapter lets both worlds interoperate.
//
// # Quick Start
//
//	set := fastset.FromSlice([]uint32{5, 10, 15, 20, 25, 30})
//
//	set.Insert(35)             // grows the bound automatically
//	set.Remove(5)
//	ok := set.Contains(15)     // O(1)
//
//	rng := rand.New(rand.NewSource(1))
//	v, ok := set.Random(rng)   // O(1) uniform sample
//
// # Set algebra
//
// Union, Intersection, Difference, and SymmetricDifference accept anything
// implementing Membership, so a Set combines directly with a
// map[uint32]struct{} (via MapSet) or a roaring bitmap (via RoaringSet):
//
//	evens := fastset.FromSlice([]uint32{0, 2, 4, 6})
//	small := fastset.MapSet{1: {}, 2: {}, 3: {}}
//	both := evens.Intersection(small)
//
// # Concurrency
//
// A Set is a single-threaded value type: no internal locking, no shared
// state. Wrap it in a mutex for cross-goroutine use, or partition work so
// each goroutine owns its own instance. Clone performs a deep copy.
package fastset
