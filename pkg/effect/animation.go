package effect

import (
	"math"

	"github.com/gonewx/startrail/pkg/utils"
)

// StarFrame 星星在某一进度上的动画状态
type StarFrame struct {
	OffsetX  float64 // 相对生成位置的水平偏移(像素)
	OffsetY  float64 // 相对生成位置的垂直偏移(像素)，向下为正
	Rotation float64 // 旋转角度(弧度)
	Alpha    float64 // 不透明度 [0, 1]
	Scale    float64 // 缩放倍数
}

// StarAnimationFunc 根据归一化进度计算星星帧
type StarAnimationFunc func(progress float64) StarFrame

// DefaultStarAnimation 未知动画名时使用的动画
const DefaultStarAnimation = "fall-2"

// fallDistance 星星在整个生命周期内下落的距离(像素)
const fallDistance = 180.0

var starAnimations = map[string]StarAnimationFunc{
	// 向左飘落，逆时针旋转
	"fall-1": func(p float64) StarFrame {
		p = utils.Clamp01(p)
		return StarFrame{
			OffsetX:  -40 * utils.EaseOutQuad(p),
			OffsetY:  fallDistance * utils.EaseInQuad(p),
			Rotation: -math.Pi * p,
			Alpha:    1 - utils.EaseInCubic(p),
			Scale:    1,
		}
	},
	// 竖直下落，轻微摇摆
	"fall-2": func(p float64) StarFrame {
		p = utils.Clamp01(p)
		return StarFrame{
			OffsetX:  6 * math.Sin(p*2*math.Pi),
			OffsetY:  fallDistance * utils.EaseInQuad(p),
			Rotation: math.Pi / 2 * utils.EaseInOutSine(p),
			Alpha:    1 - utils.EaseInCubic(p),
			Scale:    utils.Lerp(1, 0.6, p),
		}
	},
	// 向右飘落，顺时针旋转
	"fall-3": func(p float64) StarFrame {
		p = utils.Clamp01(p)
		return StarFrame{
			OffsetX:  40 * utils.EaseOutQuad(p),
			OffsetY:  fallDistance * utils.EaseInCubic(p),
			Rotation: math.Pi * p,
			Alpha:    1 - utils.EaseInQuad(p),
			Scale:    1,
		}
	},
}

// StarAnimation 按名称查找下落动画，未知名称回退到 DefaultStarAnimation
func StarAnimation(name string) StarAnimationFunc {
	if fn, ok := starAnimations[name]; ok {
		return fn
	}
	return starAnimations[DefaultStarAnimation]
}

// HasStarAnimation 名称是否在动画目录中
func HasStarAnimation(name string) bool {
	_, ok := starAnimations[name]
	return ok
}
