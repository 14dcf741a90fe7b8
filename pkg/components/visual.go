package components

import "github.com/gonewx/startrail/pkg/effect"

// VisualComponent 临时视觉元素的外观数据
//
// Kind 区分星星和光晕点。星星使用 Size 和 Animation；
// 光晕点的 Size 和 Animation 为零值，半径由外观配置决定。
type VisualComponent struct {
	Kind      effect.VisualKind
	Size      float64 // 星星尺寸(像素)
	Animation string  // 星星下落动画名: fall-1 / fall-2 / fall-3
	Handle    effect.Handle
}
