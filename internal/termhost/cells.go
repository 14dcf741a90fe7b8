// Package termhost 在终端里运行星光拖尾
//
// 终端鼠标事件以字符单元为单位，这里把单元映射为固定尺寸的像素块，
// 这样以像素为单位的拖尾配置（距离阈值、光晕间距）可以原样使用。
package termhost

import (
	"math"

	"github.com/gonewx/startrail/pkg/utils"
)

// 一个字符单元对应的像素尺寸
const (
	CellWidth  = 8
	CellHeight = 16
)

// 字形
const (
	glyphLargeStar  = '✦'
	glyphMediumStar = '✧'
	glyphSmallStar  = '⋆'
	glyphGlow       = '·'
)

// CellToPixel 返回单元中心的像素坐标
func CellToPixel(x, y int) utils.Point {
	return utils.Point{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y) + 0.5) * CellHeight,
	}
}

// PixelToCell 返回像素坐标所在的单元
func PixelToCell(p utils.Point) (x, y int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// starGlyph 按尺寸选择星星字形
func starGlyph(size float64) rune {
	switch {
	case size >= 20:
		return glyphLargeStar
	case size >= 12:
		return glyphMediumStar
	default:
		return glyphSmallStar
	}
}
