package fastset

import (
	"strconv"
	"strings"

	"github.com/hupe1980/fastset/internal/bitset"
	"github.com/hupe1980/fastset/internal/pagetable"
)

// MaxCapacity caps the largest value a Set will ever represent. A presence
// bitmap for one billion values commits on the order of 128 MB; growing past
// that signals use outside the structure's design envelope, so construction
// above the cap panics and Insert refuses to grow past it.
const MaxCapacity = 1_000_000_000

// DefaultMax is the bound used by New.
const DefaultMax = 64

// initialElementsCap limits the eager allocation of the element list; it
// grows on demand past this.
const initialElementsCap = 1024

// Rand supplies uniform random integers for Random. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Set is a container for uint32 values drawn from the dense universe
// 0..MaxValue(). It keeps three cooperating structures: a presence bitmap
// for O(1) membership, a compact element list for O(1) uniform sampling,
// and a paged table mapping each present value to its position in the list.
//
// A Set is a single-threaded value type. Wrap it in external synchronization
// for cross-goroutine use, or give each goroutine its own instance.
type Set struct {
	presence *bitset.Bits
	elements []uint32
	pages    *pagetable.Table
	max      uint32

	// Cached extremes; meaningful only while the set is non-empty.
	curMax uint32
	curMin uint32
}

// WithMax creates an empty Set able to hold values 0..maxElement without
// reallocation. It panics if maxElement exceeds MaxCapacity; requesting a
// bound past the cap is a programmer error, not a recoverable condition.
func WithMax(maxElement uint32) *Set {
	if maxElement > MaxCapacity {
		panic(ErrCapacityExceeded)
	}
	elemCap := int(maxElement) + 1
	if elemCap > initialElementsCap {
		elemCap = initialElementsCap
	}
	return &Set{
		presence: bitset.New(maxElement + 1),
		elements: make([]uint32, 0, elemCap),
		pages:    pagetable.New(),
		max:      maxElement,
	}
}

// WithCapacity creates an empty Set sized for the inclusive upper bound
// capacity. It is WithMax under a capacity framing: equal numeric input
// yields a structurally equivalent set.
func WithCapacity(capacity uint32) *Set {
	return WithMax(capacity)
}

// New creates an empty Set with a small default bound.
func New() *Set {
	return WithMax(DefaultMax)
}

// Capacity returns the largest value the set can currently hold without
// reallocation.
func (s *Set) Capacity() uint32 {
	return s.max
}

// MaxValue returns the largest value the set can currently hold. Alias of
// Capacity.
func (s *Set) MaxValue() uint32 {
	return s.max
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.elements)
}

// IsEmpty returns true if the set contains no elements.
func (s *Set) IsEmpty() bool {
	return len(s.elements) == 0
}

// Reserve grows the representable range to 0..newMax if newMax exceeds the
// current bound; otherwise it is a no-op. Requests past MaxCapacity are
// refused silently, the same policy Insert applies to oversized values.
// Only the presence bitmap grows eagerly — the element list and page table
// grow as values are inserted.
func (s *Set) Reserve(newMax uint32) {
	if newMax > MaxCapacity {
		return
	}
	if newMax > s.max {
		s.presence.Grow(newMax + 1)
		s.max = newMax
	}
}

// ShrinkTo releases excess capacity down to the larger of the current
// maximum member and minCapacity. It never cuts below what the stored
// elements need.
func (s *Set) ShrinkTo(minCapacity uint32) {
	newMax := minCapacity
	if !s.IsEmpty() && s.curMax > newMax {
		newMax = s.curMax
	}
	s.resizeTo(newMax)
}

// ShrinkToFit releases all excess capacity: the bound becomes the current
// maximum member, or zero for an empty set.
func (s *Set) ShrinkToFit() {
	if s.IsEmpty() {
		s.resizeTo(0)
		return
	}
	s.resizeTo(s.curMax)
}

// resizeTo re-sizes the presence bitmap to exactly newMax+1 slots in either
// direction and trims dependent storage.
func (s *Set) resizeTo(newMax uint32) {
	if newMax+1 < s.presence.Len() {
		s.presence.Shrink(newMax + 1)
	} else {
		s.presence.Grow(newMax + 1)
	}
	s.max = newMax
	s.pages.Truncate(newMax)
	if cap(s.elements) > 2*len(s.elements) {
		trimmed := make([]uint32, len(s.elements))
		copy(trimmed, s.elements)
		s.elements = trimmed
	}
}

// Insert adds v to the set. It returns true if v was newly added and false
// if v was already present.
//
// Values beyond the current bound grow the set first; the common case
// v == Capacity()+1 takes a cheap single-slot growth path. Values at or
// past MaxCapacity are refused with false rather than growing unboundedly —
// callers needing guaranteed insertion must pre-check against MaxCapacity.
func (s *Set) Insert(v uint32) bool {
	if v <= s.max {
		return s.insertInBounds(v)
	}
	if v >= MaxCapacity {
		return false
	}
	if v == s.max+1 {
		s.presence.Grow(v + 1)
		s.max = v
	} else {
		s.Reserve(v)
	}
	return s.insertInBounds(v)
}

// InsertAll inserts each value in turn and returns the number newly added.
func (s *Set) InsertAll(values ...uint32) int {
	added := 0
	for _, v := range values {
		if s.Insert(v) {
			added++
		}
	}
	return added
}

// insertInBounds requires v <= s.max; Insert establishes that before
// delegating here.
func (s *Set) insertInBounds(v uint32) bool {
	if s.presence.Test(v) {
		return false
	}
	s.presence.Set(v)

	pos := uint32(len(s.elements))
	s.elements = append(s.elements, v)
	s.pages.Set(v, pos)

	if pos == 0 {
		s.curMax, s.curMin = v, v
	} else if v > s.curMax {
		s.curMax = v
	} else if v < s.curMin {
		s.curMin = v
	}
	return true
}

// Remove deletes v from the set. It returns true if v was present and false
// if v was absent or out of the representable range.
func (s *Set) Remove(v uint32) bool {
	if v > s.max {
		return false
	}
	return s.removeInBounds(v)
}

// RemoveAll removes each value in turn and returns the number removed.
func (s *Set) RemoveAll(values ...uint32) int {
	removed := 0
	for _, v := range values {
		if s.Remove(v) {
			removed++
		}
	}
	return removed
}

// removeInBounds requires v <= s.max; Remove establishes that before
// delegating here.
func (s *Set) removeInBounds(v uint32) bool {
	if !s.presence.Test(v) {
		return false
	}
	s.presence.Unset(v)

	pos := s.pages.Get(v)
	last := uint32(len(s.elements) - 1)
	if pos < last {
		moved := s.elements[last]
		s.elements[pos] = moved
		s.pages.Set(moved, pos)
	}
	s.elements = s.elements[:last]

	// Zero the stale slot so a bug elsewhere cannot read it as live.
	s.pages.Clear(v)

	if len(s.elements) == 0 {
		return true
	}
	// Removing a cached extreme is the one O(n) path: rescan the element
	// list. Extremum removal is rare enough that an ordered auxiliary
	// structure is not worth carrying for every insert and remove.
	if v == s.curMax {
		s.curMax = maxOf(s.elements)
	}
	if v == s.curMin {
		s.curMin = minOf(s.elements)
	}
	return true
}

func maxOf(elements []uint32) uint32 {
	m := elements[0]
	for _, e := range elements[1:] {
		if e > m {
			m = e
		}
	}
	return m
}

// refreshExtremes recomputes both cached extremes in one pass. Used after
// bulk removals that bypass the per-element rescan.
func (s *Set) refreshExtremes() {
	if len(s.elements) == 0 {
		return
	}
	s.curMax = maxOf(s.elements)
	s.curMin = minOf(s.elements)
}

func minOf(elements []uint32) uint32 {
	m := elements[0]
	for _, e := range elements[1:] {
		if e < m {
			m = e
		}
	}
	return m
}

// Contains returns true if v is a member. Values out of the representable
// range report false; probing speculatively past the bound is normal use.
func (s *Set) Contains(v uint32) bool {
	return s.presence.Test(v)
}

// Get returns (v, true) if v is a member, and (0, false) otherwise.
func (s *Set) Get(v uint32) (uint32, bool) {
	if s.Contains(v) {
		return v, true
	}
	return 0, false
}

// Take removes v and returns (v, true) if it was a member, and (0, false)
// otherwise.
func (s *Set) Take(v uint32) (uint32, bool) {
	if s.Remove(v) {
		return v, true
	}
	return 0, false
}

// Clear removes all elements, keeping capacity for reuse.
func (s *Set) Clear() {
	for _, v := range s.elements {
		s.presence.Unset(v)
	}
	s.elements = s.elements[:0]
	s.pages.Reset()
}

// Max returns the largest member, or (0, false) if the set is empty.
func (s *Set) Max() (uint32, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.curMax, true
}

// Min returns the smallest member, or (0, false) if the set is empty.
func (s *Set) Min() (uint32, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.curMin, true
}

// PeekLargest returns the largest member without removing it. Alias of Max.
func (s *Set) PeekLargest() (uint32, bool) {
	return s.Max()
}

// PeekSmallest returns the smallest member without removing it. Alias of
// Min.
func (s *Set) PeekSmallest() (uint32, bool) {
	return s.Min()
}

// RemoveLargest removes and returns the largest member, or (0, false) if
// the set is empty. Removing the extremum triggers an O(n) rescan.
func (s *Set) RemoveLargest() (uint32, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	v := s.curMax
	s.removeInBounds(v)
	return v, true
}

// RemoveSmallest removes and returns the smallest member, or (0, false) if
// the set is empty. Removing the extremum triggers an O(n) rescan.
func (s *Set) RemoveSmallest() (uint32, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	v := s.curMin
	s.removeInBounds(v)
	return v, true
}

// Rank returns the number of members strictly less than v. This is a linear
// scan of the presence bitmap over 0..v, not a logarithmic query.
func (s *Set) Rank(v uint32) int {
	if v == 0 {
		return 0
	}
	return s.presence.CountRange(0, v)
}

// RangeCardinality returns the number of members in the half-open range
// [start, end). It scans the presence bitmap, so cost is proportional to
// the range length.
func (s *Set) RangeCardinality(start, end uint32) int {
	return s.presence.CountRange(start, end)
}

// Random returns a uniformly random member using the supplied generator, or
// (0, false) if the set is empty. This is the structure's signature
// operation: O(1) uniform sampling of a changing set, via a uniform index
// into the compact element list.
func (s *Set) Random(rng Rand) (uint32, bool) {
	if len(s.elements) == 0 {
		return 0, false
	}
	return s.elements[rng.Intn(len(s.elements))], true
}

// Clone returns a deep copy. The page table holds raw positions into the
// element list, so all three structures are copied together to stay
// self-consistent.
func (s *Set) Clone() *Set {
	elements := make([]uint32, len(s.elements), cap(s.elements))
	copy(elements, s.elements)
	return &Set{
		presence: s.presence.Clone(),
		elements: elements,
		pages:    s.pages.Clone(),
		max:      s.max,
		curMax:   s.curMax,
		curMin:   s.curMin,
	}
}

// String renders the members as a brace-delimited, comma-separated list.
// The particular order is an implementation artifact, not a contract.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}
