package systems

import (
	"github.com/gonewx/startrail/pkg/utils"
)

// PointerEmitter 接收指针事件的分发器，effect.PointerHub 实现了它
type PointerEmitter interface {
	EmitMove(p utils.Point)
	EmitTouchMove(touches []utils.Point)
	EmitLeave()
}

// PointerTracker 把逐帧的指针快照转换为离散的指针事件
//
// ebiten 只提供轮询式输入，这里比较相邻两帧得到：
//   - move：鼠标在区域内且位置变化（进入区域也算一次）
//   - touch-move：主触摸点出现或移动
//   - leave：鼠标离开区域、窗口失去焦点、或所有触摸点抬起
//
// 触摸优先于鼠标：有触摸时忽略同一帧的鼠标状态。
type PointerTracker struct {
	emitter     PointerEmitter
	ignoreMouse bool

	cursorInside bool
	lastCursor   utils.Point
	touching     bool
	lastTouch    utils.Point
}

// NewPointerTracker 创建指针跟踪器
// ignoreMouse 为 true 时只跟踪触摸（移动端）
func NewPointerTracker(emitter PointerEmitter, ignoreMouse bool) *PointerTracker {
	return &PointerTracker{
		emitter:     emitter,
		ignoreMouse: ignoreMouse,
	}
}

// Update 处理一帧快照
func (t *PointerTracker) Update(sample utils.PointerSample) {
	if !sample.Focused {
		if t.cursorInside || t.touching {
			t.Reset()
			t.emitter.EmitLeave()
		}
		return
	}

	if len(sample.Touches) > 0 {
		primary := sample.Touches[0]
		if !t.touching || primary != t.lastTouch {
			t.emitter.EmitTouchMove(sample.Touches)
		}
		t.touching = true
		t.lastTouch = primary
		// 触摸期间鼠标位置通常跟随触摸点，不再单独产生事件
		t.cursorInside = false
		return
	}

	if t.touching {
		t.touching = false
		t.emitter.EmitLeave()
		return
	}

	if t.ignoreMouse {
		return
	}

	if sample.CursorInside {
		if !t.cursorInside || sample.Cursor != t.lastCursor {
			t.emitter.EmitMove(sample.Cursor)
		}
		t.cursorInside = true
		t.lastCursor = sample.Cursor
		return
	}

	if t.cursorInside {
		t.cursorInside = false
		t.emitter.EmitLeave()
	}
}

// Reset 清除跟踪状态，不产生事件
func (t *PointerTracker) Reset() {
	t.cursorInside = false
	t.touching = false
	t.lastCursor = utils.Origin
	t.lastTouch = utils.Origin
}
