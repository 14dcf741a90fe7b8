package systems

import (
	"github.com/gonewx/startrail/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReadPointerSample 读取当前帧的 ebiten 鼠标和触摸状态
// 必须在 ebiten 的 Update 中调用；width/height 为 Layout 返回的逻辑尺寸
func ReadPointerSample(width, height int) utils.PointerSample {
	var touches []utils.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, utils.Point{X: float64(x), Y: float64(y)})
	}

	x, y := ebiten.CursorPosition()
	return utils.NewPointerSample(x, y, width, height, ebiten.IsFocused(), touches)
}
