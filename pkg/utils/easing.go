package utils

import "math"

// 缓动函数
//
// 星星的下落动画按生命周期进度 t ∈ [0, 1] 取样，
// 缓动函数把线性进度映射成更自然的速度曲线，输出同样落在 [0, 1]。

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseInQuad 二次方缓入：开始慢，结束快（重力下落）
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出：开始快，结束慢
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInCubic 三次方缓入
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出，用于左右摆动
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 在 a 和 b 之间按 t 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
