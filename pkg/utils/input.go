package utils

// PointerSample 一帧的指针状态快照
// 由宿主每帧读取一次，再交给指针跟踪器与上一帧比较
type PointerSample struct {
	// 鼠标位置（逻辑像素）
	Cursor Point
	// 鼠标是否在绘制区域内
	CursorInside bool
	// 窗口是否拥有焦点
	Focused bool
	// 当前所有触摸点，按触摸 ID 顺序；第一个为主触摸点
	Touches []Point
}

// NewPointerSample 根据原始输入构造快照
// 鼠标坐标落在 [0, width) × [0, height) 内时视为在区域内
func NewPointerSample(cursorX, cursorY, width, height int, focused bool, touches []Point) PointerSample {
	return PointerSample{
		Cursor:       Point{X: float64(cursorX), Y: float64(cursorY)},
		CursorInside: cursorX >= 0 && cursorY >= 0 && cursorX < width && cursorY < height,
		Focused:      focused,
		Touches:      touches,
	}
}
