package effect

import (
	"image/color"
	"math"

	"github.com/gonewx/startrail/pkg/config"
	"github.com/lucasb-eyer/go-colorful"
)

// StarColor 星星在给定进度上的颜色
// 在 Luv 空间从 StarColor 渐变到 StarFadeColor，透明度也随之插值
func StarColor(p config.Palette, progress float64) color.NRGBA {
	from := ToColorful(p.StarColor)
	to := ToColorful(p.StarFadeColor)
	blended := from.BlendLuv(to, progress).Clamped()
	r, g, b := blended.RGB255()

	alpha := float64(p.StarColor.A) + (float64(p.StarFadeColor.A)-float64(p.StarColor.A))*progress
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha))}
}

// GlowColor 光晕点在给定进度上的颜色，透明度线性衰减到 0
func GlowColor(p config.Palette, progress float64) color.NRGBA {
	c := p.GlowColor
	c.A = uint8(math.Round(float64(c.A) * (1 - progress)))
	return c
}

// ToColorful 把 NRGBA 的 RGB 分量转换为 go-colorful 颜色，忽略透明度
func ToColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
	}
}
