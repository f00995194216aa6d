// Package bitset provides a word-packed presence bitmap over a dense,
// bounded value universe. It is not safe for concurrent use; the owning
// container is a single-threaded value type.
package bitset

import "math/bits"

// Bits is a fixed-universe bitmap addressing values 0..Len()-1.
type Bits struct {
	words []uint64
	n     uint32 // number of addressable bits
}

// New creates a bitmap addressing n bits, all unset.
func New(n uint32) *Bits {
	return &Bits{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

func wordsFor(n uint32) int {
	return int((uint64(n) + 63) / 64)
}

// Len returns the number of addressable bits.
func (b *Bits) Len() uint32 {
	return b.n
}

// Test returns true if bit i is set. Out-of-range bits read as unset.
func (b *Bits) Test(i uint32) bool {
	if i >= b.n {
		return false
	}
	return b.words[i>>6]&(1<<(i&63)) != 0
}

// Set sets bit i. The caller must ensure i < Len().
func (b *Bits) Set(i uint32) {
	b.words[i>>6] |= 1 << (i & 63)
}

// Unset clears bit i. The caller must ensure i < Len().
func (b *Bits) Unset(i uint32) {
	b.words[i>>6] &^= 1 << (i & 63)
}

// Grow extends the addressable range to at least n bits, preserving
// existing bits. Shrinking is handled by Shrink.
func (b *Bits) Grow(n uint32) {
	if n <= b.n {
		return
	}
	need := wordsFor(n)
	if need > len(b.words) {
		if need <= cap(b.words) {
			b.words = b.words[:need]
		} else {
			grown := make([]uint64, need)
			copy(grown, b.words)
			b.words = grown
		}
	}
	b.n = n
}

// Shrink truncates the addressable range to n bits. Bits at or past n are
// discarded; the partial tail word is masked so stale bits cannot resurface
// on a later Grow.
func (b *Bits) Shrink(n uint32) {
	if n >= b.n {
		return
	}
	need := wordsFor(n)
	trimmed := make([]uint64, need)
	copy(trimmed, b.words[:need])
	if need > 0 {
		if rem := n & 63; rem != 0 {
			trimmed[need-1] &= (1 << rem) - 1
		}
	}
	b.words = trimmed
	b.n = n
}

// Count returns the number of set bits.
func (b *Bits) Count() int {
	count := 0
	for _, w := range b.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// CountRange returns the number of set bits in the half-open range
// [start, end). Out-of-range portions contribute zero.
func (b *Bits) CountRange(start, end uint32) int {
	if end > b.n {
		end = b.n
	}
	if start >= end {
		return 0
	}

	firstWord := int(start >> 6)
	lastWord := int((end - 1) >> 6)

	if firstWord == lastWord {
		mask := (^uint64(0) << (start & 63)) & maskUpTo(end)
		return bits.OnesCount64(b.words[firstWord] & mask)
	}

	count := bits.OnesCount64(b.words[firstWord] & (^uint64(0) << (start & 63)))
	for w := firstWord + 1; w < lastWord; w++ {
		if b.words[w] != 0 {
			count += bits.OnesCount64(b.words[w])
		}
	}
	count += bits.OnesCount64(b.words[lastWord] & maskUpTo(end))
	return count
}

// maskUpTo returns a mask of the bits strictly below end within end's word.
func maskUpTo(end uint32) uint64 {
	if rem := end & 63; rem != 0 {
		return (1 << rem) - 1
	}
	return ^uint64(0)
}

// NextSet returns the index of the first set bit at or after from.
func (b *Bits) NextSet(from uint32) (uint32, bool) {
	if from >= b.n {
		return 0, false
	}
	wordIdx := int(from >> 6)
	word := b.words[wordIdx] &^ ((1 << (from & 63)) - 1)
	for {
		if word != 0 {
			i := uint32(wordIdx)<<6 + uint32(bits.TrailingZeros64(word))
			if i >= b.n {
				return 0, false
			}
			return i, true
		}
		wordIdx++
		if wordIdx >= len(b.words) {
			return 0, false
		}
		word = b.words[wordIdx]
	}
}

// Words returns the backing words. The slice is shared; callers must treat
// it as read-only.
func (b *Bits) Words() []uint64 {
	return b.words
}

// Reset clears all bits without releasing the backing array.
func (b *Bits) Reset() {
	clear(b.words)
}

// Clone returns a deep copy.
func (b *Bits) Clone() *Bits {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Bits{words: words, n: b.n}
}
