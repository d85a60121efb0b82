// Package tinylfu provides the key hashing layer used by the probabilistic
// structures of a windowed-LFU cache: the Bloom-filter doorkeeper and the
// count-sketch frequency estimator both turn keys into 64-bit hashes through
// a KeyHasher and reduce that value themselves.
package tinylfu

import (
	"hash/maphash"
	"io"
	"reflect"
	"strconv"

	"github.com/ExJuser/tinylfu/hashbuilder"
)

// KeyHasher hashes keys of type K to 64 bits.
//
// Hashes are deterministic within one instance and consistent with ==. They
// are not required to match across instances unless the implementation is
// pinned to a fixed seed. Implementations never modify or retain the key.
//
// HashRef, HashString and HashBytes are the borrowed forms: HashRef(&k)
// equals HashKey(k) for every key, and for string-like keys
// HashString(s) and HashBytes([]byte(s)) equal HashKey(k) when k's content is s.
type KeyHasher[K comparable] interface {
	HashKey(key K) uint64
	HashRef(key *K) uint64
	HashString(s string) uint64
	HashBytes(b []byte) uint64
}

var _ KeyHasher[string] = (*DefaultKeyHasher[string])(nil)

// DefaultKeyHasher is the KeyHasher backed by a hashbuilder.Builder. Every
// call spawns a fresh Hasher from the builder, feeds it the key and finalizes
// it; nothing is written to the DefaultKeyHasher, so one instance may be
// shared between goroutines.
//
// Use NewDefaultKeyHasher or NewKeyHasher; the zero value is not usable.
type DefaultKeyHasher[K comparable] struct {
	builder hashbuilder.Builder
	seed    maphash.Seed
}

// NewDefaultKeyHasher returns an xxhash-backed hasher with a random seed.
// Two hashers returned by separate calls generally disagree on every key.
func NewDefaultKeyHasher[K comparable]() *DefaultKeyHasher[K] {
	builder, err := DefaultConfig().newBuilder()
	if err != nil {
		panic(err) // xxhash under a random seed always builds
	}
	return NewKeyHasherWithBuilder[K](builder)
}

// NewKeyHasher builds a hasher from config. It returns
// hashbuilder.ErrUnknownAlgorithm for an unrecognised Algorithm and
// hashbuilder.ErrSeedNotSupported when FixedSeed is set for maphash.
func NewKeyHasher[K comparable](config Config) (*DefaultKeyHasher[K], error) {
	builder, err := config.newBuilder()
	if err != nil {
		return nil, err
	}

	if config.Verbose {
		seed := "random"
		if config.FixedSeed {
			seed = strconv.FormatUint(config.Seed, 10)
		}
		newLogger(config.Logger).Printf("key hasher initialised: key=%s algorithm=%s seed=%s",
			reflect.TypeFor[K](), builder.Algorithm(), seed)
	}

	return NewKeyHasherWithBuilder[K](builder), nil
}

// NewKeyHasherWithBuilder wraps a caller-supplied builder.
func NewKeyHasherWithBuilder[K comparable](builder hashbuilder.Builder) *DefaultKeyHasher[K] {
	return &DefaultKeyHasher[K]{
		builder: builder,
		seed:    maphash.MakeSeed(),
	}
}

// Algorithm reports the builder family in use.
func (h *DefaultKeyHasher[K]) Algorithm() hashbuilder.Algorithm {
	return h.builder.Algorithm()
}

// HashKey hashes an owned key.
func (h *DefaultKeyHasher[K]) HashKey(key K) uint64 {
	s := h.builder.NewHasher()
	writeKey(s, h.seed, key)
	return s.Sum64()
}

// HashRef hashes the key behind ref without copying it. A nil ref hashes the zero key.
func (h *DefaultKeyHasher[K]) HashRef(ref *K) uint64 {
	if ref == nil {
		var zero K
		return h.HashKey(zero)
	}
	s := h.builder.NewHasher()
	writeKey(s, h.seed, *ref)
	return s.Sum64()
}

// HashString hashes a borrowed string view; it equals HashKey for a string-like key with the same content.
func (h *DefaultKeyHasher[K]) HashString(str string) uint64 {
	s := h.builder.NewHasher()
	_, _ = io.WriteString(s, str)
	return s.Sum64()
}

// HashBytes hashes a borrowed byte view without copying it.
func (h *DefaultKeyHasher[K]) HashBytes(b []byte) uint64 {
	s := h.builder.NewHasher()
	_, _ = s.Write(b)
	return s.Sum64()
}
