package effect

import (
	"math"

	"github.com/gonewx/startrail/pkg/utils"
)

// GlowQuantity 计算一段距离需要的光晕点数量
//
// 数量取 floor(distance / spacing)，且至少为 1。
// 距离不小于 spacing 时相邻点间距落在 [spacing, 2*spacing) 内。
func GlowQuantity(distance, spacing float64) int {
	quantity := int(math.Floor(distance / spacing))
	if quantity < 1 {
		return 1
	}
	return quantity
}

// InterpolateGlow 计算 from 到 to 之间的光晕点
//
// 返回 quantity 个点：point_i = from + (dx*i, dy*i)，i ∈ [0, quantity)。
// 终点 to 不包含在内，它会作为下一次移动的起点。
// from == to 时返回恰好一个点，即 from。
func InterpolateGlow(from, to utils.Point, spacing float64) []utils.Point {
	quantity := GlowQuantity(utils.Distance(from, to), spacing)

	dx := (to.X - from.X) / float64(quantity)
	dy := (to.Y - from.Y) / float64(quantity)

	points := make([]utils.Point, quantity)
	for i := range points {
		points[i] = utils.Point{
			X: from.X + dx*float64(i),
			Y: from.Y + dy*float64(i),
		}
	}
	return points
}
