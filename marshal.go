package fastset

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"io"
)

const (
	// binaryMagic identifies fastset binary data (ASCII: "FSET").
	binaryMagic = 0x46534554
	// binaryVersion is the current binary format version (v1.0).
	binaryVersion = 0x00010000
	// readChunk caps how many elements are preallocated and decoded per
	// batch. The header's count field is untrusted until the payload bytes
	// actually arrive, so a forged count must not size an allocation.
	readChunk = 1 << 14
)

// binaryHeader is the 16-byte header at the start of the binary encoding.
type binaryHeader struct {
	Magic   uint32
	Version uint32
	Max     uint32
	Count   uint32
}

// WriteTo writes the binary encoding of the set: a fixed header, the raw
// little-endian element list, and a CRC32-Castagnoli footer over everything
// before it. The presence bitmap, page table, and cached extremes are
// derived state and are rebuilt on read.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	h := crc32.New(crc32cTable)
	mw := io.MultiWriter(w, h)

	hdr := binaryHeader{
		Magic:   binaryMagic,
		Version: binaryVersion,
		Max:     s.max,
		Count:   uint32(len(s.elements)),
	}
	if err := binary.Write(mw, binary.LittleEndian, hdr); err != nil {
		return 0, err
	}
	n := int64(16)

	if len(s.elements) > 0 {
		if err := binary.Write(mw, binary.LittleEndian, s.elements); err != nil {
			return n, err
		}
		n += int64(len(s.elements)) * 4
	}

	if err := binary.Write(w, binary.LittleEndian, h.Sum32()); err != nil {
		return n, err
	}
	return n + 4, nil
}

// ReadFrom replaces the set's contents with a binary encoding produced by
// WriteTo. The set is only modified if the data decodes and verifies
// cleanly.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	h := crc32.New(crc32cTable)
	tr := io.TeeReader(r, h)

	var hdr binaryHeader
	if err := binary.Read(tr, binary.LittleEndian, &hdr); err != nil {
		return 0, err
	}
	n := int64(16)

	if hdr.Magic != binaryMagic {
		return n, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, hdr.Magic)
	}
	if hdr.Version != binaryVersion {
		return n, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, hdr.Version)
	}
	if hdr.Max > MaxCapacity {
		return n, fmt.Errorf("%w: bound %d exceeds capacity ceiling", ErrInvalidFormat, hdr.Max)
	}
	if uint64(hdr.Count) > uint64(hdr.Max)+1 {
		return n, fmt.Errorf("%w: %d elements cannot fit bound %d", ErrInvalidFormat, hdr.Count, hdr.Max)
	}

	elements := make([]uint32, 0, min(hdr.Count, readChunk))
	chunk := make([]uint32, min(hdr.Count, readChunk))
	for remaining := hdr.Count; remaining > 0; {
		batch := min(remaining, readChunk)
		if err := binary.Read(tr, binary.LittleEndian, chunk[:batch]); err != nil {
			return n, err
		}
		elements = append(elements, chunk[:batch]...)
		n += int64(batch) * 4
		remaining -= batch
	}

	var sum uint32
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return n, err
	}
	n += 4
	if sum != h.Sum32() {
		return n, fmt.Errorf("%w: got 0x%08x, want 0x%08x", ErrChecksumMismatch, h.Sum32(), sum)
	}

	restored := WithMax(hdr.Max)
	for _, v := range elements {
		if v > hdr.Max {
			return n, fmt.Errorf("%w: element %d exceeds bound %d", ErrInvalidFormat, v, hdr.Max)
		}
		if !restored.insertInBounds(v) {
			return n, fmt.Errorf("%w: duplicate element %d", ErrInvalidFormat, v)
		}
	}
	*s = *restored
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Set) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(20 + 4*len(s.elements))
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppendBinary implements encoding.BinaryAppender.
func (s *Set) AppendBinary(b []byte) ([]byte, error) {
	buf := bytes.NewBuffer(b)
	if _, err := s.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Set) UnmarshalBinary(data []byte) error {
	_, err := s.ReadFrom(bytes.NewReader(data))
	return err
}

// setJSON is the portable JSON form: the bound plus the member list.
type setJSON struct {
	Max      uint32   `json:"max"`
	Elements []uint32 `json:"elements"`
}

// MarshalJSON implements json.Marshaler.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(setJSON{
		Max:      s.max,
		Elements: s.ToSlice(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. Elements beyond the recorded
// bound grow the set, matching Insert semantics.
func (s *Set) UnmarshalJSON(data []byte) error {
	var sj setJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	if sj.Max > MaxCapacity {
		return fmt.Errorf("%w: bound %d exceeds capacity ceiling", ErrInvalidFormat, sj.Max)
	}
	restored := WithMax(sj.Max)
	for _, v := range sj.Elements {
		if !restored.Insert(v) {
			return fmt.Errorf("%w: duplicate or oversized element %d", ErrInvalidFormat, v)
		}
	}
	*s = *restored
	return nil
}
