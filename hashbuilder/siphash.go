package hashbuilder

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// sipHashBuilder stretches the 64-bit seed into SipHash's 128-bit key.
type sipHashBuilder struct {
	key [16]byte
}

func newSipHashBuilder(seed uint64) sipHashBuilder {
	var b sipHashBuilder
	k0 := splitmix64(&seed)
	k1 := splitmix64(&seed)
	binary.LittleEndian.PutUint64(b.key[0:8], k0)
	binary.LittleEndian.PutUint64(b.key[8:16], k1)
	return b
}

func (b sipHashBuilder) NewHasher() Hasher {
	return siphash.New(b.key[:])
}

func (b sipHashBuilder) Algorithm() Algorithm {
	return SipHash
}

func (b sipHashBuilder) keys() (k0, k1 uint64) {
	return binary.LittleEndian.Uint64(b.key[0:8]), binary.LittleEndian.Uint64(b.key[8:16])
}

func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
