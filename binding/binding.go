// Package binding exposes UUID generation and the UUID codec through a
// C-style status-code API over raw byte regions.
//
// Its signatures mirror a foreign-function boundary: callers own every
// buffer, absent references are representable (nil slices and pointers),
// string output is NUL-terminated, and each operation reports a Status
// instead of a Go error. The status values form a closed, stable
// enumeration shared with non-Go callers and must never be renumbered.
//
// Go code that is not sitting behind such a boundary should use the root
// package directly; its value types make the InvalidParameter class of
// failures unrepresentable.
package binding

import (
	"errors"

	uuid4 "github.com/Wildcard209/UUID-Generator"
)

// Status is an operation result code.
type Status int32

// Stable status codes. The numeric assignments are an ABI contract.
const (
	Success          Status = 0
	EntropyFailure   Status = 1
	InvalidParameter Status = 2
	BufferTooSmall   Status = 3
	UnknownError     Status = 99
)

// StringBufferSize is the minimum destination capacity for ToString:
// 36 characters of canonical text plus a NUL terminator.
const StringBufferSize = 37

// GenerateV4 generates a new UUIDv4 into dst.
//
// dst must reference a 16-byte region; a nil or wrongly sized dst yields
// InvalidParameter. On EntropyFailure dst is left untouched.
func GenerateV4(dst []byte) Status {
	if dst == nil || len(dst) != 16 {
		return InvalidParameter
	}

	uuid, err := uuid4.New()
	if err != nil {
		return statusFromError(err)
	}

	copy(dst, uuid[:])
	return Success
}

// ToString renders the 16-byte UUID in src into dst as NUL-terminated
// canonical text.
//
// len(dst) is the declared capacity and must be at least StringBufferSize.
// If the capacity check fails nothing is written, so a failed call never
// leaves a partial rendering behind.
func ToString(src, dst []byte) Status {
	if src == nil || len(src) != 16 || dst == nil {
		return InvalidParameter
	}
	if len(dst) < StringBufferSize {
		return BufferTooSmall
	}

	uuid, err := uuid4.FromBytes(src)
	if err != nil {
		return statusFromError(err)
	}

	copy(dst[:36], uuid.String())
	dst[36] = 0
	return Success
}

// GetInfo extracts the version and variant fields of the UUID in src.
//
// version receives the value of the top four bits of byte 6 (0-15),
// variant the top two bits of byte 8 read as an unsigned integer (0-3).
func GetInfo(src []byte, version, variant *byte) Status {
	if src == nil || len(src) != 16 || version == nil || variant == nil {
		return InvalidParameter
	}

	*version = src[6] >> 4
	*variant = src[8] >> 6
	return Success
}

// Compare tests the 16-byte UUIDs a and b for byte-for-byte equality,
// writing 1 to equal if they match and 0 otherwise.
func Compare(a, b []byte, equal *byte) Status {
	if a == nil || len(a) != 16 || b == nil || len(b) != 16 || equal == nil {
		return InvalidParameter
	}

	*equal = 1
	for i := 0; i < 16; i++ {
		if a[i] != b[i] {
			*equal = 0
			break
		}
	}
	return Success
}

// ErrorString returns a human-readable message for a status code.
// It is total: unrecognized codes yield a generic message rather than
// an error or empty string.
func ErrorString(code Status) string {
	switch code {
	case Success:
		return "Success"
	case EntropyFailure:
		return "Failed to generate random data from entropy source"
	case InvalidParameter:
		return "Invalid parameter"
	case BufferTooSmall:
		return "Buffer too small"
	case UnknownError:
		return "Unknown error"
	default:
		return "Invalid error code"
	}
}

// statusFromError maps root package errors onto the status enumeration.
func statusFromError(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, uuid4.ErrEntropyFailure):
		return EntropyFailure
	case errors.Is(err, uuid4.ErrInvalidLength), errors.Is(err, uuid4.ErrInvalidFormat):
		return InvalidParameter
	default:
		return UnknownError
	}
}
