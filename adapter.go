package fastset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// MapSet adapts a plain Go hash-set to the Membership interface so it can
// take part in set algebra against a Set without conversion.
type MapSet map[uint32]struct{}

var _ Membership = MapSet(nil)

// Contains checks if v is in the map.
func (m MapSet) Contains(v uint32) bool {
	_, ok := m[v]
	return ok
}

// Elements returns an iterator over the map's members. Order is the map's
// iteration order.
func (m MapSet) Elements() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

// Max returns the largest member, or (0, false) if the map is empty.
func (m MapSet) Max() (uint32, bool) {
	if len(m) == 0 {
		return 0, false
	}
	var best uint32
	for v := range m {
		if v > best {
			best = v
		}
	}
	return best, true
}

// RoaringSet adapts a roaring bitmap to the Membership interface. The
// bitmap is borrowed, not copied; mutations through the original remain
// visible.
type RoaringSet struct {
	rb *roaring.Bitmap
}

var _ Membership = (*RoaringSet)(nil)

// NewRoaringSet wraps an existing roaring bitmap. A nil bitmap is treated
// as empty.
func NewRoaringSet(rb *roaring.Bitmap) *RoaringSet {
	if rb == nil {
		rb = roaring.New()
	}
	return &RoaringSet{rb: rb}
}

// Contains checks if v is in the bitmap.
func (r *RoaringSet) Contains(v uint32) bool {
	return r.rb.Contains(v)
}

// Elements returns an iterator over the bitmap's members in ascending
// order.
func (r *RoaringSet) Elements() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := r.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Max returns the largest member, or (0, false) if the bitmap is empty.
func (r *RoaringSet) Max() (uint32, bool) {
	if r.rb.IsEmpty() {
		return 0, false
	}
	return r.rb.Maximum(), true
}

// Bitmap returns the wrapped roaring bitmap.
func (r *RoaringSet) Bitmap() *roaring.Bitmap {
	return r.rb
}
