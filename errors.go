package fastset

import "errors"

var (
	// ErrCapacityExceeded is the panic value when a constructor is asked
	// for a bound past MaxCapacity. Construction past the cap is a
	// programmer error, not a recoverable condition.
	ErrCapacityExceeded = errors.New("fastset: requested bound exceeds MaxCapacity")
	// ErrInvalidMagic is returned when serialized data does not start with
	// the fastset magic number.
	ErrInvalidMagic = errors.New("fastset: invalid magic number")
	// ErrInvalidVersion is returned when serialized data uses an
	// unsupported format version.
	ErrInvalidVersion = errors.New("fastset: unsupported format version")
	// ErrChecksumMismatch is returned when serialized data fails integrity
	// verification.
	ErrChecksumMismatch = errors.New("fastset: checksum mismatch")
	// ErrInvalidFormat is returned when serialized data is structurally
	// inconsistent (out-of-range or duplicate elements, impossible counts).
	ErrInvalidFormat = errors.New("fastset: invalid format")
)
