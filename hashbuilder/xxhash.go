package hashbuilder

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

type xxhashBuilder struct {
	seed uint64
}

func newXXHashBuilder(seed uint64) xxhashBuilder {
	return xxhashBuilder{seed: seed}
}

func (b xxhashBuilder) NewHasher() Hasher {
	return xxhash.NewWithSeed(b.seed)
}

func (b xxhashBuilder) Algorithm() Algorithm {
	return XXHash
}

type xxh3Builder struct {
	seed uint64
}

func newXXH3Builder(seed uint64) xxh3Builder {
	return xxh3Builder{seed: seed}
}

func (b xxh3Builder) NewHasher() Hasher {
	return xxh3.NewSeed(b.seed)
}

func (b xxh3Builder) Algorithm() Algorithm {
	return XXH3
}
