package termhost

import (
	"image/color"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/effect"
	"github.com/gonewx/startrail/pkg/utils"
)

// minVisibleAlpha 低于此透明度的元素不绘制
const minVisibleAlpha = 0.1

type cellVisual struct {
	kind      effect.VisualKind
	pos       utils.Point
	variant   effect.Variant
	spawnedAt time.Time
	lifetime  time.Duration
}

// Surface 终端字符单元上的视觉表面，实现 effect.Surface
//
// 元素以像素坐标保存，绘制时才映射到单元。
// 终端没有透明度，半透明颜色按 alpha 与背景色混合。
type Surface struct {
	clock     utils.Clock
	palette   config.Palette
	lifetimes map[effect.VisualKind]time.Duration

	next    effect.Handle
	visuals map[effect.Handle]*cellVisual
}

// NewSurface 创建终端视觉表面
func NewSurface(clock utils.Clock, appearance config.AppearanceConfig, trail config.TrailConfig) (*Surface, error) {
	palette, err := appearance.Palette()
	if err != nil {
		return nil, err
	}
	return &Surface{
		clock:   clock,
		palette: palette,
		lifetimes: map[effect.VisualKind]time.Duration{
			effect.KindStar: trail.StarAnimationDuration,
			effect.KindGlow: trail.GlowDuration,
		},
		visuals: make(map[effect.Handle]*cellVisual),
	}, nil
}

// Spawn 实现 effect.Surface
func (s *Surface) Spawn(kind effect.VisualKind, pos utils.Point, variant effect.Variant) effect.Handle {
	s.next++
	s.visuals[s.next] = &cellVisual{
		kind:      kind,
		pos:       pos,
		variant:   variant,
		spawnedAt: s.clock.Now(),
		lifetime:  s.lifetimes[kind],
	}
	return s.next
}

// Remove 实现 effect.Surface，重复移除是空操作
func (s *Surface) Remove(h effect.Handle) {
	delete(s.visuals, h)
}

// Count 返回指定种类的元素数量
func (s *Surface) Count(kind effect.VisualKind) int {
	n := 0
	for _, v := range s.visuals {
		if v.kind == kind {
			n++
		}
	}
	return n
}

// Draw 把所有元素画到屏幕上，光晕点在下，星星在上
func (s *Surface) Draw(screen tcell.Screen, now time.Time) {
	handles := make([]effect.Handle, 0, len(s.visuals))
	for h := range s.visuals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	width, height := screen.Size()
	for _, kind := range []effect.VisualKind{effect.KindGlow, effect.KindStar} {
		for _, h := range handles {
			v := s.visuals[h]
			if v.kind != kind {
				continue
			}
			glyph, pos, clr, ok := s.render(v, now)
			if !ok {
				continue
			}
			x, y := PixelToCell(pos)
			if x < 0 || y < 0 || x >= width || y >= height {
				continue
			}
			screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(clr).Background(s.tcellColor(s.palette.Background)))
		}
	}
}

// render 计算元素在 now 时刻的字形、位置和颜色
func (s *Surface) render(v *cellVisual, now time.Time) (rune, utils.Point, tcell.Color, bool) {
	progress := 1.0
	if v.lifetime > 0 {
		progress = utils.Clamp01(float64(utils.Elapsed(v.spawnedAt, now)) / float64(v.lifetime))
	}

	if v.kind == effect.KindGlow {
		clr := effect.GlowColor(s.palette, progress)
		alpha := float64(clr.A) / 0xff
		if alpha < minVisibleAlpha {
			return 0, utils.Point{}, 0, false
		}
		return glyphGlow, v.pos, s.blend(clr, alpha), true
	}

	frame := effect.StarAnimation(v.variant.Animation)(progress)
	clr := effect.StarColor(s.palette, progress)
	alpha := frame.Alpha * float64(clr.A) / 0xff
	if alpha < minVisibleAlpha {
		return 0, utils.Point{}, 0, false
	}
	pos := v.pos.Add(frame.OffsetX, frame.OffsetY)
	return starGlyph(v.variant.Size * frame.Scale), pos, s.blend(clr, alpha), true
}

// blend 按 alpha 把前景色混合到背景色上
func (s *Surface) blend(fg color.NRGBA, alpha float64) tcell.Color {
	bg := effect.ToColorful(s.palette.Background)
	mixed := bg.BlendRgb(effect.ToColorful(fg), alpha).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (s *Surface) tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
