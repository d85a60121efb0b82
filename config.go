package tinylfu

import "github.com/ExJuser/tinylfu/hashbuilder"

// Config for DefaultKeyHasher
type Config struct {
	// Algorithm selects the hash-builder family. Defaults to xxhash.
	Algorithm hashbuilder.Algorithm
	// Seed keys the hash builder. Used only when FixedSeed is true.
	Seed uint64
	// FixedSeed pins Seed so hashes are reproducible across instances and process runs.
	// When false every hasher draws its own random seed.
	// Keys holding pointers or channels, directly or in a field, still hash by
	// identity and stay per-instance.
	FixedSeed bool
	// Verbose logs the builder chosen at construction.
	Verbose bool
	// Logger is used in combination with `Verbose`. Defaults to `DefaultLogger()`.
	Logger Logger
}

// DefaultConfig hashes with xxhash under a per-instance random seed.
func DefaultConfig() Config {
	return Config{
		Algorithm: hashbuilder.XXHash,
	}
}

// SeededConfig pins the seed, for reproducible tests and cross-run determinism.
func SeededConfig(seed uint64) Config {
	return DefaultConfig().WithSeed(seed)
}

// WithAlgorithm returns a copy of c using alg.
func (c Config) WithAlgorithm(alg hashbuilder.Algorithm) Config {
	c.Algorithm = alg
	return c
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = seed
	c.FixedSeed = true
	return c
}

func (c Config) algorithm() hashbuilder.Algorithm {
	if c.Algorithm == "" {
		return hashbuilder.XXHash
	}
	return c.Algorithm
}

func (c Config) newBuilder() (hashbuilder.Builder, error) {
	if c.FixedSeed {
		return hashbuilder.New(c.algorithm(), c.Seed)
	}
	return hashbuilder.NewRandom(c.algorithm())
}
