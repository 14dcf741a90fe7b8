package utils

import (
	"math/rand/v2"
)

// RandomSource 抽象的随机数来源
// 允许在测试中注入确定性的实现，*rand.Rand 天然满足此接口
type RandomSource interface {
	// IntN 返回 [0, n) 范围内的均匀随机整数，n <= 0 时 panic
	IntN(n int) int
}

// NewRandomSource 创建一个基于 PCG 的可复现随机数来源
// 相同的 seed 产生相同的序列
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SelectRandom 从 items 中均匀随机选择一个元素
//
// 参数：
//   - rng: 随机数来源
//   - items: 候选列表，调用者必须保证非空
//
// items 为空属于调用契约违规，直接 panic
func SelectRandom[T any](rng RandomSource, items []T) T {
	if len(items) == 0 {
		panic("utils: SelectRandom called with empty items")
	}
	return items[rng.IntN(len(items))]
}
