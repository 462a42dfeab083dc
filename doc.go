// Package uuid4 provides a lightweight and efficient implementation of random
// (version 4) Universally Unique Identifiers (UUIDs) in Go.
//
// A UUIDv4 is a 128-bit identifier whose bits are drawn from a cryptographically
// secure random source, except for six fixed marker bits: the version nibble
// (byte 6, set to 4) and the variant bits (byte 8, set to the RFC 4122 layout).
// The remaining 122 random bits make collisions between independently generated
// identifiers vanishingly unlikely, which makes UUIDv4 a good fit for:
//   - Database primary keys where ordering does not matter
//   - Correlation and request identifiers in distributed systems
//   - Any identifier that must be unguessable and globally unique
//
// Basic Usage:
//
//	// Generate a new UUIDv4
//	id, err := uuid4.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from its canonical string form
//	id, err := uuid4.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inspect the marker bits
//	version := id.Version() // 4
//	variant := id.Variant() // uuid4.VariantRFC4122
//
// Custom Generator:
//
//	// Create a generator with an explicit entropy source, e.g. for tests
//	gen := uuid4.NewGeneratorWithReader(deterministicReader)
//	id, err := gen.New()
//
// Thread Safety:
//
// Generation is stateless: no mutable state is shared between calls, so the
// package-level generator and any custom Generator can be used concurrently
// from multiple goroutines without additional synchronization, provided the
// underlying entropy source is itself safe for concurrent use (crypto/rand is).
//
// Standards Compliance:
//
// This implementation follows the RFC 4122 and RFC 9562 specifications.
// The canonical textual form is always the lowercase, dash-separated
// 36-character rendering; each UUID has exactly one such rendering.
//
// The binding subpackage exposes the same operations through a C-style
// status-code API over raw byte regions, for callers that sit on the other
// side of a foreign-function boundary.
package uuid4
