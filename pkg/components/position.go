package components

// PositionComponent 视觉元素的生成位置(屏幕像素坐标)
// 生成后不再移动，下落等偏移由动画在渲染时叠加
type PositionComponent struct {
	X, Y float64
}
