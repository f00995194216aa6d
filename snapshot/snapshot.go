// Package snapshot persists fastset sets as self-describing, optionally
// compressed snapshots. The header records the format version and the
// compression codec by name, so a snapshot written with one configuration
// is readable with another.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/fastset"
)

const (
	// Magic identifies fastset snapshot files (ASCII: "FSNP").
	Magic = 0x46534e50
	// Version is the current snapshot format version.
	Version = 1
)

// Compression codec names stored in the snapshot header.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

// maxPrealloc caps the payload buffer preallocated from the header's length
// field. The field is untrusted until the payload bytes actually arrive, so
// a forged length must not size an allocation.
const maxPrealloc = 1 << 20

var (
	// ErrInvalidMagic is returned when data does not start with the
	// snapshot magic number.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")
	// ErrInvalidVersion is returned for unsupported snapshot versions.
	ErrInvalidVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCompression is returned when the header names a codec this
	// build does not know.
	ErrUnknownCompression = errors.New("snapshot: unknown compression codec")
)

// Options configures snapshot writing and reading.
type Options struct {
	// Compression selects the payload codec for Write. Defaults to
	// CompressionZstd. Read ignores it: snapshots are self-describing.
	Compression string

	// Logger receives structured debug/info records. Nil disables logging.
	Logger *slog.Logger
}

func (o *Options) compression() string {
	if o == nil || o.Compression == "" {
		return CompressionZstd
	}
	return o.Compression
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// header is the fixed-size portion of the snapshot frame; the codec name
// and payload follow it.
type header struct {
	Magic   uint32
	Version uint16
	NameLen uint8
	Pad     uint8
}

// Write writes s as a snapshot frame: header, codec name, payload length,
// payload. The payload is the set's binary encoding (which carries its own
// integrity checksum), passed through the selected compression codec.
func Write(w io.Writer, s *fastset.Set, opts *Options) error {
	raw, err := s.MarshalBinary()
	if err != nil {
		return err
	}

	name := opts.compression()
	payload, err := compress(name, raw)
	if err != nil {
		return err
	}

	hdr := header{
		Magic:   Magic,
		Version: Version,
		NameLen: uint8(len(name)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	opts.logger().Debug("snapshot written",
		"elements", s.Len(),
		"compression", name,
		"raw_bytes", len(raw),
		"payload_bytes", len(payload),
	)
	return nil
}

// Read decodes a snapshot frame written by Write and returns the restored
// set.
func Read(r io.Reader, opts *Options) (*fastset.Set, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Magic != Magic {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, hdr.Magic)
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, hdr.Version)
	}

	nameBuf := make([]byte, hdr.NameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, err
	}
	name := string(nameBuf)

	var payloadLen uint32
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return nil, err
	}
	var payloadBuf bytes.Buffer
	payloadBuf.Grow(int(min(payloadLen, maxPrealloc)))
	got, err := io.Copy(&payloadBuf, io.LimitReader(r, int64(payloadLen)))
	if err != nil {
		return nil, err
	}
	if got != int64(payloadLen) {
		return nil, io.ErrUnexpectedEOF
	}
	payload := payloadBuf.Bytes()

	raw, err := decompress(name, payload)
	if err != nil {
		return nil, err
	}

	s := fastset.New()
	if err := s.UnmarshalBinary(raw); err != nil {
		return nil, err
	}

	opts.logger().Debug("snapshot read",
		"elements", s.Len(),
		"compression", name,
		"payload_bytes", len(payload),
	)
	return s, nil
}

// WriteFile writes a snapshot to path.
func WriteFile(path string, s *fastset.Set, opts *Options) error {
	var buf bytes.Buffer
	if err := Write(&buf, s, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	opts.logger().Info("snapshot saved", "path", path, "bytes", buf.Len())
	return nil
}

// ReadFile reads a snapshot from path.
func ReadFile(path string, opts *Options) (*fastset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

func compress(name string, raw []byte) ([]byte, error) {
	switch name {
	case CompressionNone:
		return raw, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, make([]byte, 0, len(raw))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

func decompress(name string, payload []byte) ([]byte, error) {
	switch name {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}
