// Package utils 提供星光拖尾效果使用的通用工具函数
//
// 包括几何计算（点、距离、时间差）、随机选择、时钟抽象、缓动函数，
// 以及读取 ebiten 指针（鼠标/触摸）状态的辅助函数。
package utils

import (
	"fmt"
	"math"
	"time"
)

// Point 表示指针事件坐标空间中的一个点
// 值类型，不可变；零值即原点 (0, 0)
type Point struct {
	X float64
	Y float64
}

// Origin 坐标原点
// 协调器用它表示"还没有真实的指针采样"
var Origin = Point{}

// IsOrigin 判断点是否恰好位于原点（精确比较，不使用容差）
func (p Point) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

// Add 返回 p 偏移 (dx, dy) 后的新点
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String 实现 fmt.Stringer，便于日志输出
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Distance 计算两点之间的欧几里得距离
// 公式：sqrt((b.x-a.x)² + (b.y-a.y)²)
func Distance(a, b Point) float64 {
	diffX := b.X - a.X
	diffY := b.Y - a.Y
	return math.Sqrt(diffX*diffX + diffY*diffY)
}

// Elapsed 计算两个时间戳之间的时间差 end - start
// 两个时间戳必须来自同一个 Clock；调用顺序颠倒时返回负值
func Elapsed(start, end time.Time) time.Duration {
	return end.Sub(start)
}
