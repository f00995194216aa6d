package fastset

import (
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is the Castagnoli polynomial table, hardware-accelerated on
// x86 and ARM.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Equal reports whether s and other contain exactly the same members,
// irrespective of insertion history or internal storage order.
func (s *Set) Equal(other *Set) bool {
	if len(s.elements) != len(other.elements) {
		return false
	}
	for _, v := range s.elements {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// EqualMembership reports whether s and a foreign set-like collection hold
// the same members. The collection's iterator must yield each member
// exactly once.
func (s *Set) EqualMembership(other Membership) bool {
	n := 0
	for v := range other.Elements() {
		if !s.Contains(v) {
			return false
		}
		n++
	}
	return n == len(s.elements)
}

// Hash returns an order-independent digest of the membership. Equal sets
// hash equal regardless of how they were built: the digest covers the
// presence bitmap's words, which depend only on which values are present,
// with trailing zero words excluded so differing spare capacity does not
// change the result.
func (s *Set) Hash() uint32 {
	words := s.presence.Words()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}

	h := crc32.New(crc32cTable)
	var buf [8]byte
	for _, w := range words[:n] {
		binary.LittleEndian.PutUint64(buf[:], w)
		h.Write(buf[:])
	}
	return h.Sum32()
}
