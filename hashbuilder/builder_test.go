package hashbuilder

import (
	"hash/fnv"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/dgryski/go-farm"
	metro "github.com/dgryski/go-metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(b Builder, parts ...string) uint64 {
	h := b.NewHasher()
	for _, p := range parts {
		_, _ = io.WriteString(h, p)
	}
	return h.Sum64()
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		parsed, err := ParseAlgorithm(strings.ToUpper(string(alg)) + " ")
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)
	}

	_, err := ParseAlgorithm("crc32")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNewRejectsUnsupportedInput(t *testing.T) {
	t.Parallel()

	_, err := New(MapHash, 1)
	assert.ErrorIs(t, err, ErrSeedNotSupported)
	assert.False(t, MapHash.Seedable())

	_, err = New(Algorithm("crc32"), 1)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = NewRandom(Algorithm("crc32"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestFreshHasherPerCall(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			b, err := NewRandom(alg)
			require.NoError(t, err)
			assert.Equal(t, alg, b.Algorithm())

			first := b.NewHasher()
			_, _ = io.WriteString(first, "key")
			want := first.Sum64()

			// a hasher still holding data must not leak into the next one
			_, _ = io.WriteString(first, "more")
			assert.Equal(t, want, sum(b, "key"))
			assert.Equal(t, want, sum(b, "k", "e", "y"))
		})
	}
}

func TestFixedSeedReproducible(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		if !alg.Seedable() {
			continue
		}
		t.Run(string(alg), func(t *testing.T) {
			b1, err := New(alg, 99)
			require.NoError(t, err)
			b2, err := New(alg, 99)
			require.NoError(t, err)
			other, err := New(alg, 100)
			require.NoError(t, err)

			assert.Equal(t, sum(b1, "hello"), sum(b2, "hello"))
			assert.NotEqual(t, sum(b1, "hello"), sum(other, "hello"))
		})
	}
}

func TestXXHashMatchesOneShot(t *testing.T) {
	t.Parallel()

	b, err := New(XXHash, 0)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("hello world"), sum(b, "hello ", "world"))
}

func TestSipHashMatchesOneShot(t *testing.T) {
	t.Parallel()

	b := newSipHashBuilder(5)
	k0, k1 := b.keys()
	assert.NotEqual(t, k0, k1)
	assert.Equal(t, siphash.Hash(k0, k1, []byte("hello world")), sum(b, "hello ", "world"))
}

func TestOneShotHasherBuffers(t *testing.T) {
	t.Parallel()

	// longer than the inline buffer
	long := strings.Repeat("abcdefgh", 20)
	const seed = 7

	fb := newFarmBuilder(seed)
	assert.Equal(t, farm.Hash64WithSeed([]byte(long), seed), sum(fb, long[:10], long[10:]))
	assert.Equal(t, farm.Hash64WithSeed([]byte("short"), seed), sum(fb, "short"))

	mb := newMetroBuilder(seed)
	assert.Equal(t, metro.Hash64([]byte(long), seed), sum(mb, long[:70], long[70:]))
	assert.Equal(t, metro.Hash64(nil, seed), sum(mb))
}

func TestFNVHighBitsSpread(t *testing.T) {
	t.Parallel()

	const keys = 100000
	b, err := New(FNV, 42)
	require.NoError(t, err)

	// short keys differing only in their trailing digits
	var counts [1024]int
	for i := 0; i < keys; i++ {
		counts[sum(b, "key-"+strconv.Itoa(i))>>54]++
	}
	expected := keys / len(counts)
	for i, c := range counts {
		assert.Greater(t, c, expected/4, "bucket %d under-filled", i)
		assert.Less(t, c, expected*3, "bucket %d over-filled", i)
	}
}

func TestFmix64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), fmix64(0))
	assert.NotEqual(t, fmix64(1), fmix64(2))
	// a one-bit change in the input flips roughly half of the output
	diff := bits.OnesCount64(fmix64(0x1000) ^ fmix64(0x1001))
	assert.Greater(t, diff, 16)
	assert.Less(t, diff, 48)
}

func TestFNVSeedPrefix(t *testing.T) {
	t.Parallel()

	b, err := New(FNV, 0x0102030405060708)
	require.NoError(t, err)

	ref := fnv.New64a()
	_, _ = ref.Write([]byte{8, 7, 6, 5, 4, 3, 2, 1})
	_, _ = ref.Write([]byte("hello"))
	assert.Equal(t, fmix64(ref.Sum64()), sum(b, "hello"))
	assert.NotEqual(t, ref.Sum64(), sum(b, "hello"))
}
