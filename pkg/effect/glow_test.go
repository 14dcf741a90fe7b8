package effect

import (
	"math"
	"testing"

	"github.com/gonewx/startrail/pkg/utils"
)

func TestGlowQuantity(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		spacing  float64
		expected int
	}{
		{"零距离至少一个点", 0, 10, 1},
		{"小于间距", 4, 10, 1},
		{"恰好一个间距", 10, 10, 1},
		{"略超一个间距", 10.5, 10, 1},
		{"一个半间距", 15, 10, 1},
		{"整数倍", 200, 10, 20},
		{"非整数倍向下取整", 25, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlowQuantity(tt.distance, tt.spacing); got != tt.expected {
				t.Errorf("GlowQuantity(%v, %v) = %d, 期望 %d", tt.distance, tt.spacing, got, tt.expected)
			}
		})
	}
}

// TestInterpolateGlowSamePoint from == to 时恰好返回一个等于 from 的点
func TestInterpolateGlowSamePoint(t *testing.T) {
	p := utils.Point{X: 42, Y: -7}
	points := InterpolateGlow(p, p, 10)

	if len(points) != 1 {
		t.Fatalf("期望 1 个点，实际 %d 个", len(points))
	}
	if points[0] != p {
		t.Errorf("点 = %v, 期望 %v", points[0], p)
	}
}

func TestInterpolateGlowHorizontal(t *testing.T) {
	from := utils.Point{X: 100, Y: 100}
	to := utils.Point{X: 300, Y: 100}
	points := InterpolateGlow(from, to, 10)

	if len(points) != 20 {
		t.Fatalf("期望 20 个点，实际 %d 个", len(points))
	}
	for i, p := range points {
		want := utils.Point{X: 100 + float64(i)*10, Y: 100}
		if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
			t.Errorf("points[%d] = %v, 期望 %v", i, p, want)
		}
	}
}

// TestInterpolateGlowSpacingBound 距离不小于最大间距时，相邻光晕点的间距
// 落在 [spacing, 2*spacing) 内，最后一个点到终点的距离与之相同；
// 距离小于最大间距时只有起点一个点
func TestInterpolateGlowSpacingBound(t *testing.T) {
	const tolerance = 1e-9
	rng := utils.NewRandomSource(2024)
	spacings := []float64{1, 3.5, 10, 37}

	for _, spacing := range spacings {
		for i := 0; i < 200; i++ {
			from := utils.Point{X: float64(rng.IntN(2000)) - 1000, Y: float64(rng.IntN(2000)) - 1000}
			to := utils.Point{X: float64(rng.IntN(2000)) - 1000, Y: float64(rng.IntN(2000)) - 1000}

			points := InterpolateGlow(from, to, spacing)
			if len(points) == 0 {
				t.Fatalf("InterpolateGlow(%v, %v, %v) 返回空序列", from, to, spacing)
			}
			if points[0] != from {
				t.Fatalf("第一个点应等于起点 %v，实际 %v", from, points[0])
			}

			d := utils.Distance(from, to)
			if d < spacing {
				if len(points) != 1 {
					t.Fatalf("距离 %v 小于最大间距 %v 时期望 1 个点，实际 %d 个", d, spacing, len(points))
				}
				continue
			}

			step := d / float64(len(points))
			if step < spacing-tolerance || step >= 2*spacing {
				t.Fatalf("间距 %v 不在 [%v, %v) 内 (%v -> %v)", step, spacing, 2*spacing, from, to)
			}
			for j := 1; j < len(points); j++ {
				if got := utils.Distance(points[j-1], points[j]); math.Abs(got-step) > 1e-6 {
					t.Fatalf("相邻点间距 %v, 期望 %v", got, step)
				}
			}
			if got := utils.Distance(points[len(points)-1], to); math.Abs(got-step) > 1e-6 {
				t.Fatalf("最后一个点到终点的距离 %v, 期望 %v", got, step)
			}
		}
	}
}

// TestInterpolateGlowNonMultiple 非整数倍距离按向下取整分段
func TestInterpolateGlowNonMultiple(t *testing.T) {
	points := InterpolateGlow(utils.Point{}, utils.Point{X: 15}, 10)
	if len(points) != 1 || points[0] != (utils.Point{}) {
		t.Fatalf("15 像素期望只有起点一个点，实际为 %v", points)
	}

	points = InterpolateGlow(utils.Point{}, utils.Point{X: 25}, 10)
	want := []utils.Point{{X: 0}, {X: 12.5}}
	if len(points) != len(want) {
		t.Fatalf("25 像素期望 %d 个点，实际为 %v", len(want), points)
	}
	for i := range want {
		if math.Abs(points[i].X-want[i].X) > 1e-9 || points[i].Y != 0 {
			t.Errorf("points[%d] = %v, 期望 %v", i, points[i], want[i])
		}
	}
}
