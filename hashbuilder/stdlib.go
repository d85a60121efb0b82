package hashbuilder

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"hash/maphash"
)

// fnvBuilder keys FNV-1a by writing the seed ahead of the data. FNV-1a
// leaves the high bits poorly mixed on short similar keys, so Sum64 runs the
// result through fmix64.
type fnvBuilder struct {
	prefix [8]byte
}

func newFNVBuilder(seed uint64) fnvBuilder {
	var b fnvBuilder
	binary.LittleEndian.PutUint64(b.prefix[:], seed)
	return b
}

func (b fnvBuilder) NewHasher() Hasher {
	h := fnvHasher{fnv.New64a()}
	_, _ = h.Write(b.prefix[:])
	return h
}

func (b fnvBuilder) Algorithm() Algorithm {
	return FNV
}

type fnvHasher struct {
	hash.Hash64
}

func (h fnvHasher) Sum64() uint64 {
	return fmix64(h.Hash64.Sum64())
}

// fmix64 is the murmur3 64-bit finalizer.
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// mapHashBuilder wraps the runtime's map hash. maphash seeds cannot be
// constructed from an integer, so this builder is always randomized.
type mapHashBuilder struct {
	seed maphash.Seed
}

func newMapHashBuilder() mapHashBuilder {
	return mapHashBuilder{seed: maphash.MakeSeed()}
}

func (b mapHashBuilder) NewHasher() Hasher {
	h := new(maphash.Hash)
	h.SetSeed(b.seed)
	return h
}

func (b mapHashBuilder) Algorithm() Algorithm {
	return MapHash
}
