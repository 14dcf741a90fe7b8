package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDStats HUD 显示的统计数据
type HUDStats struct {
	Stars    int
	Glows    int
	Pending  int
	Attached bool
	TPS      float64
}

// String 格式化为多行文本
func (s HUDStats) String() string {
	state := "detached"
	if s.Attached {
		state = "attached"
	}
	return fmt.Sprintf("stars: %d\nglows: %d\npending removals: %d\ntrail: %s\nTPS: %0.1f",
		s.Stars, s.Glows, s.Pending, state, s.TPS)
}

// HUD 左上角调试信息
type HUD struct {
	face *text.GoTextFace
}

// NewHUD 加载 Go 字体并创建 HUD
func NewHUD(size float64) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &HUD{
		face: &text.GoTextFace{Source: src, Size: size},
	}, nil
}

// Draw 绘制统计数据
func (h *HUD) Draw(screen *ebiten.Image, stats HUDStats) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 10)
	op.LineSpacing = h.face.Size * 1.4
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xdd, G: 0xe3, B: 0xff, A: 0xcc})
	text.Draw(screen, stats.String(), h.face, op)
}
