package uuid4

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	gouuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestNew(t *testing.T) {
	uuid, err := New()
	require.NoError(t, err)

	assert.False(t, uuid.IsNil())
	assert.Equal(t, VersionRandom, uuid.Version())
	assert.Equal(t, VariantRFC4122, uuid.Variant())
}

func TestNewV4(t *testing.T) {
	uuid, err := NewV4()
	require.NoError(t, err)

	assert.Equal(t, VersionRandom, uuid.Version())
	assert.Equal(t, VariantRFC4122, uuid.Variant())
}

func TestGenerator_New(t *testing.T) {
	gen := NewGenerator()

	uuid, err := gen.New()
	require.NoError(t, err)

	assert.False(t, uuid.IsNil())
	assert.Equal(t, VersionRandom, uuid.Version())
	assert.Equal(t, VariantRFC4122, uuid.Variant())
}

func TestGenerator_DeterministicSource(t *testing.T) {
	// An all-zero source leaves only the forced marker bits set.
	gen := NewGeneratorWithReader(bytes.NewReader(make([]byte, 16)))

	uuid, err := gen.New()
	require.NoError(t, err)

	assert.Equal(t, "00000000-0000-4000-8000-000000000000", uuid.String())
	assert.Equal(t, VersionRandom, uuid.Version())
	assert.Equal(t, VariantRFC4122, uuid.Variant())
}

func TestGenerator_MarkerBitsPreserveRandomness(t *testing.T) {
	// An all-ones source shows which bits the fixups clear.
	src := bytes.Repeat([]byte{0xff}, 16)
	gen := NewGeneratorWithReader(bytes.NewReader(src))

	uuid, err := gen.New()
	require.NoError(t, err)

	assert.Equal(t, byte(0x4f), uuid[6], "low nibble of byte 6 must survive")
	assert.Equal(t, byte(0xbf), uuid[8], "low six bits of byte 8 must survive")
	for _, i := range []int{0, 1, 2, 3, 4, 5, 7, 9, 10, 11, 12, 13, 14, 15} {
		assert.Equal(t, byte(0xff), uuid[i], "byte %d must be untouched", i)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read(p []byte) (int, error) { return 0, r.err }

func TestGenerator_EntropyFailure(t *testing.T) {
	cause := errors.New("entropy pool unavailable")
	gen := NewGeneratorWithReader(failingReader{err: cause})

	uuid, err := gen.New()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntropyFailure)
	assert.Equal(t, Nil, uuid)
}

func TestGenerator_ShortReadIsEntropyFailure(t *testing.T) {
	// A source that runs dry mid-fill must not yield a partially random UUID.
	gen := NewGeneratorWithReader(bytes.NewReader(make([]byte, 8)))

	uuid, err := gen.New()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntropyFailure)
	assert.Equal(t, Nil, uuid)
}

func TestNew_CanonicalGrammar(t *testing.T) {
	for i := 0; i < 100; i++ {
		uuid, err := New()
		require.NoError(t, err)

		s := uuid.String()
		require.Len(t, s, 36)
		assert.Regexp(t, canonicalRe, s)
		assert.Equal(t, byte('-'), s[8])
		assert.Equal(t, byte('-'), s[13])
		assert.Equal(t, byte('-'), s[18])
		assert.Equal(t, byte('-'), s[23])
	}
}

func TestNew_NoCollisions(t *testing.T) {
	const count = 10000

	seen := make(map[UUID]struct{}, count)
	for i := 0; i < count; i++ {
		uuid, err := New()
		require.NoError(t, err)

		_, dup := seen[uuid]
		require.False(t, dup, "duplicate UUID after %d generations: %s", i, uuid)
		seen[uuid] = struct{}{}
	}
}

func TestNew_DistinctPairCompare(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.Equal(t, a.Equal(b), b.Equal(a))
}

func TestNew_CrossValidate(t *testing.T) {
	// github.com/google/uuid acts as an independent oracle for the
	// rendering and the marker bits.
	for i := 0; i < 100; i++ {
		uuid, err := New()
		require.NoError(t, err)

		oracle, err := gouuid.FromBytes(uuid.Bytes())
		require.NoError(t, err)

		assert.Equal(t, oracle.String(), uuid.String())
		assert.Equal(t, gouuid.Version(4), oracle.Version())
		assert.Equal(t, gouuid.RFC4122, oracle.Variant())

		back, err := gouuid.Parse(uuid.String())
		require.NoError(t, err)
		assert.Equal(t, uuid.Bytes(), back[:])
	}
}

func TestGenerateRenderInspect(t *testing.T) {
	// Generation, rendering and introspection must agree end to end.
	uuid, err := New()
	require.NoError(t, err)

	s := uuid.String()
	require.Len(t, s, 36)
	assert.Regexp(t, canonicalRe, s)

	assert.Equal(t, VersionRandom, uuid.Version())
	assert.Equal(t, VariantRFC4122, uuid.Variant())

	// The version nibble is also the first character of the third group.
	assert.Equal(t, byte('4'), s[14])

	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, uuid, parsed)
}

func TestGenerator_ConcurrentSafety(t *testing.T) {
	gen := NewGenerator()
	const goroutines = 10
	const perGoroutine = 100

	var mu sync.Mutex
	seen := make(map[UUID]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				uuid, err := gen.New()
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				seen[uuid] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}

func TestMust(t *testing.T) {
	uuid := Must(New())
	assert.False(t, uuid.IsNil())

	assert.Panics(t, func() {
		Must(Nil, errors.New("boom"))
	})
}
