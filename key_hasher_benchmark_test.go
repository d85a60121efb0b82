package tinylfu

import (
	"strconv"
	"testing"

	"github.com/ExJuser/tinylfu/hashbuilder"
)

const (
	BenchKeys = 1024
)

func benchKeys() []string {
	keys := make([]string, BenchKeys)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkKeyHasher_HashKey(b *testing.B) {
	keys := benchKeys()
	for _, alg := range hashbuilder.Algorithms() {
		b.Run(string(alg), func(b *testing.B) {
			h, err := NewKeyHasher[string](DefaultConfig().WithAlgorithm(alg))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = h.HashKey(keys[i%BenchKeys])
			}
		})
	}
}

func BenchmarkKeyHasher_HashBytes(b *testing.B) {
	keys := benchKeys()
	views := make([][]byte, len(keys))
	for i, k := range keys {
		views[i] = []byte(k)
	}
	h := NewDefaultKeyHasher[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.HashBytes(views[i%BenchKeys])
	}
}

func BenchmarkKeyHasher_Struct(b *testing.B) {
	h := NewDefaultKeyHasher[point]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.HashKey(point{X: i, Y: -i})
	}
}

func BenchmarkKeyHasher_Parallel(b *testing.B) {
	keys := benchKeys()
	h := NewDefaultKeyHasher[string]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = h.HashKey(keys[i%BenchKeys])
			i++
		}
	})
}
