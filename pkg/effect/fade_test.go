package effect

import (
	"image/color"
	"testing"

	"github.com/gonewx/startrail/pkg/config"
)

func testPalette() config.Palette {
	return config.Palette{
		Background:    color.NRGBA{R: 0x0b, G: 0x0d, B: 0x17, A: 0xff},
		StarColor:     color.NRGBA{R: 0xff, G: 0xf4, B: 0xc2, A: 0xff},
		StarFadeColor: color.NRGBA{R: 0x8f, G: 0xa8, B: 0xff, A: 0xff},
		GlowColor:     color.NRGBA{R: 180, G: 200, B: 255, A: 140},
	}
}

func TestStarColorBlend(t *testing.T) {
	p := testPalette()

	if got := StarColor(p, 0); got != p.StarColor {
		t.Errorf("期望起始颜色为 %v, 实际为 %v", p.StarColor, got)
	}
	if got := StarColor(p, 1); got != p.StarFadeColor {
		t.Errorf("期望结束颜色为 %v, 实际为 %v", p.StarFadeColor, got)
	}

	mid := StarColor(p, 0.5)
	if mid == p.StarColor || mid == p.StarFadeColor {
		t.Errorf("期望中间颜色介于两者之间, 实际为 %v", mid)
	}
}

func TestGlowColorFades(t *testing.T) {
	p := testPalette()

	if got := GlowColor(p, 0); got != p.GlowColor {
		t.Errorf("期望起始颜色为 %v, 实际为 %v", p.GlowColor, got)
	}
	if got := GlowColor(p, 0.5); got.A != 70 {
		t.Errorf("期望一半进度时 Alpha=70, 实际为 %d", got.A)
	}
	if got := GlowColor(p, 1); got.A != 0 {
		t.Errorf("期望结束时完全透明, 实际 Alpha=%d", got.A)
	}
}

func TestToColorfulRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0x80, B: 0xff, A: 0x40}

	r, g, b := ToColorful(c).RGB255()
	if r != c.R || g != c.G || b != c.B {
		t.Errorf("期望 RGB 为 (%d, %d, %d), 实际为 (%d, %d, %d)", c.R, c.G, c.B, r, g, b)
	}
	if got := ToColorful(color.NRGBA{R: 0xff, A: 0}); got.R != 1 || got.G != 0 || got.B != 0 {
		t.Errorf("期望忽略透明度, 实际为 %+v", got)
	}
}
