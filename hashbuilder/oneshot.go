package hashbuilder

import (
	"github.com/dgryski/go-farm"
	metro "github.com/dgryski/go-metro"
)

// oneShotHasher buffers writes for hash functions that only expose a
// one-shot API, and hashes the whole buffer on Sum64.
type oneShotHasher struct {
	seed   uint64
	sum    func(b []byte, seed uint64) uint64
	buf    []byte
	inline [64]byte
}

func newOneShotHasher(seed uint64, sum func([]byte, uint64) uint64) *oneShotHasher {
	h := &oneShotHasher{seed: seed, sum: sum}
	h.buf = h.inline[:0]
	return h
}

func (h *oneShotHasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

func (h *oneShotHasher) WriteString(s string) (int, error) {
	h.buf = append(h.buf, s...)
	return len(s), nil
}

func (h *oneShotHasher) Sum64() uint64 {
	return h.sum(h.buf, h.seed)
}

type farmBuilder struct {
	seed uint64
}

func newFarmBuilder(seed uint64) farmBuilder {
	return farmBuilder{seed: seed}
}

func (b farmBuilder) NewHasher() Hasher {
	return newOneShotHasher(b.seed, farm.Hash64WithSeed)
}

func (b farmBuilder) Algorithm() Algorithm {
	return Farm
}

type metroBuilder struct {
	seed uint64
}

func newMetroBuilder(seed uint64) metroBuilder {
	return metroBuilder{seed: seed}
}

func (b metroBuilder) NewHasher() Hasher {
	return newOneShotHasher(b.seed, metro.Hash64)
}

func (b metroBuilder) Algorithm() Algorithm {
	return Metro
}
