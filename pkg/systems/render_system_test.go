package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAppendStarVertices(t *testing.T) {
	clr := color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	vs, is := AppendStarVertices(nil, nil, 100, 50, 10, 0, clr, 0.5)

	if len(vs) != starRimVertices+1 {
		t.Fatalf("期望 %d 个顶点, 实际为 %d", starRimVertices+1, len(vs))
	}
	if len(is) != starRimVertices*3 {
		t.Fatalf("期望 %d 个索引, 实际为 %d", starRimVertices*3, len(is))
	}

	// 中心点
	if vs[0].DstX != 100 || vs[0].DstY != 50 {
		t.Errorf("期望中心点为 (100, 50), 实际为 (%f, %f)", vs[0].DstX, vs[0].DstY)
	}
	// 第一个尖角在正上方
	if math.Abs(float64(vs[1].DstX)-100) > 1e-4 || math.Abs(float64(vs[1].DstY)-40) > 1e-4 {
		t.Errorf("期望第一个尖角为 (100, 40), 实际为 (%f, %f)", vs[1].DstX, vs[1].DstY)
	}
	// 内凹点更靠近中心
	dx := float64(vs[2].DstX) - 100
	dy := float64(vs[2].DstY) - 50
	if d := math.Hypot(dx, dy); math.Abs(d-10*starInnerRatio) > 1e-4 {
		t.Errorf("期望内凹点距离为 %f, 实际为 %f", 10*starInnerRatio, d)
	}

	for _, v := range vs {
		if v.ColorA != 0.5 || v.ColorR != 1 || v.ColorB != 0 {
			t.Fatalf("顶点颜色不符合预期: %+v", v)
		}
	}

	// 所有三角形共享中心点
	for i := 0; i < len(is); i += 3 {
		if is[i] != 0 {
			t.Errorf("期望第 %d 个三角形从中心点开始, 实际为 %d", i/3, is[i])
		}
	}
}

func TestAppendStarVerticesOffsetsIndices(t *testing.T) {
	vs := make([]ebiten.Vertex, 0)
	is := make([]uint16, 0)
	clr := color.NRGBA{A: 0xff}

	vs, is = AppendStarVertices(vs, is, 0, 0, 5, 0, clr, 1)
	vs, is = AppendStarVertices(vs, is, 20, 20, 5, 0, clr, 1)

	if len(vs) != 2*(starRimVertices+1) {
		t.Fatalf("期望 %d 个顶点, 实际为 %d", 2*(starRimVertices+1), len(vs))
	}
	secondBase := uint16(starRimVertices + 1)
	if is[starRimVertices*3] != secondBase {
		t.Errorf("期望第二颗星星的索引从 %d 开始, 实际为 %d", secondBase, is[starRimVertices*3])
	}
	for _, idx := range is {
		if int(idx) >= len(vs) {
			t.Fatalf("索引 %d 超出顶点范围", idx)
		}
	}
}

func TestHUDStatsString(t *testing.T) {
	s := HUDStats{Stars: 3, Glows: 12, Pending: 15, Attached: true, TPS: 60}
	want := "stars: 3\nglows: 12\npending removals: 15\ntrail: attached\nTPS: 60.0"
	if got := s.String(); got != want {
		t.Errorf("期望 %q, 实际为 %q", want, got)
	}
}
