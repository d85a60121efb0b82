// Package hashbuilder 提供带种子的哈希构建器：每次计算都从 Builder 取一个全新的 Hasher，
// 写入数据后 Sum64 得到结果，Hasher 不在两次计算之间复用。
package hashbuilder

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("hashbuilder: unknown algorithm")
	ErrSeedNotSupported = errors.New("hashbuilder: algorithm does not accept a fixed seed")
)

// Hasher is the per-call state produced by a Builder.
type Hasher interface {
	io.Writer
	Sum64() uint64
}

// Builder spawns fresh Hashers. A Builder is immutable once constructed and
// NewHasher is safe for concurrent use.
type Builder interface {
	NewHasher() Hasher
	Algorithm() Algorithm
}

// Algorithm names a hash-builder family.
type Algorithm string

const (
	XXHash  Algorithm = "xxhash"
	XXH3    Algorithm = "xxh3"
	SipHash Algorithm = "siphash"
	Farm    Algorithm = "farm"
	Metro   Algorithm = "metro"
	FNV     Algorithm = "fnv"
	MapHash Algorithm = "maphash"
)

var algorithms = []Algorithm{XXHash, XXH3, SipHash, Farm, Metro, FNV, MapHash}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// Seedable reports whether the algorithm can be pinned to a fixed seed.
func (a Algorithm) Seedable() bool {
	return a != MapHash
}

// ParseAlgorithm resolves a case-insensitive name, or returns ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// RandomSeed draws a seed from the process-wide random source.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// New returns a builder for alg pinned to seed.
func New(alg Algorithm, seed uint64) (Builder, error) {
	switch alg {
	case XXHash:
		return newXXHashBuilder(seed), nil
	case XXH3:
		return newXXH3Builder(seed), nil
	case SipHash:
		return newSipHashBuilder(seed), nil
	case Farm:
		return newFarmBuilder(seed), nil
	case Metro:
		return newMetroBuilder(seed), nil
	case FNV:
		return newFNVBuilder(seed), nil
	case MapHash:
		return nil, fmt.Errorf("%w: %s", ErrSeedNotSupported, alg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// NewRandom returns a builder for alg with a seed drawn from process randomness.
func NewRandom(alg Algorithm) (Builder, error) {
	if alg == MapHash {
		return newMapHashBuilder(), nil
	}
	return New(alg, RandomSeed())
}
