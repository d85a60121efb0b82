package tinylfu

// Hasher 负责生成Key的无符号64位哈希值：尽可能地减少冲突（即为不同的Key生成不同的哈希值）
// 分片缓存用它选择分片；DefaultKeyHasher 实现了该接口，分片选择和频率统计可以共用同一个哈希器
type Hasher interface {
	Sum64(string) uint64
}

var _ Hasher = (*DefaultKeyHasher[string])(nil)

// Sum64 hashes s as a borrowed string key.
func (h *DefaultKeyHasher[K]) Sum64(s string) uint64 {
	return h.HashString(s)
}
