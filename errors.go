package uuid4

import "errors"

var (
	// ErrEntropyFailure indicates that the entropy source could not supply
	// 16 random bytes (including a partial fill)
	ErrEntropyFailure = errors.New("uuid4: entropy source failure")

	// ErrInvalidFormat indicates that the UUID string is not in canonical format
	ErrInvalidFormat = errors.New("uuid4: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid4: invalid UUID length (expected 16 bytes)")
)
