package uuid4

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Generator produces random (version 4) UUIDs from a configurable
// entropy source. Generation holds no state between calls, so a single
// Generator is safe for concurrent use without additional locking.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a new UUIDv4 generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new UUIDv4 generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New generates a new UUIDv4.
//
// The generation process follows RFC 4122 section 4.4:
//  1. Fill all 16 bytes from the entropy source.
//  2. Force the version nibble (byte 6, top 4 bits) to 0100.
//  3. Force the variant bits (byte 8, top 2 bits) to 10.
//
// io.ReadFull treats a short read as an error, so a partial fill is
// reported as an entropy failure and never produces a UUID built from
// partially random bytes. The returned error wraps ErrEntropyFailure.
func (g *Generator) New() (UUID, error) {
	var uuid UUID

	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}

	uuid[6] = (uuid[6] & 0x0F) | 0x40 // version 4
	uuid[8] = (uuid[8] & 0x3F) | 0x80 // variant RFC 4122

	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid4.Must(uuid4.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new UUIDv4 using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV4 is an alias for New() for explicit version specification
func NewV4() (UUID, error) {
	return defaultGenerator.New()
}
