package effect

import "github.com/gonewx/startrail/pkg/utils"

// PointerSource 指针事件来源
//
// 每个 On* 方法注册一个处理函数，并返回对应的取消订阅函数。
// 取消订阅函数可以重复调用，第二次起为空操作。
type PointerSource interface {
	// OnMove 鼠标移动，坐标为指针所在位置
	OnMove(fn func(utils.Point)) (unsubscribe func())
	// OnTouchMove 触摸移动，携带当前所有触摸点，第一个为主触摸点
	OnTouchMove(fn func([]utils.Point)) (unsubscribe func())
	// OnLeave 指针离开宿主表面，无负载
	OnLeave(fn func()) (unsubscribe func())
}

// PointerHub 单线程指针事件分发器，实现 PointerSource
//
// 宿主把原始输入转换为 Emit* 调用；处理函数按注册顺序同步执行。
// 分发过程中取消订阅是安全的。
type PointerHub struct {
	move  handlerList[func(utils.Point)]
	touch handlerList[func([]utils.Point)]
	leave handlerList[func()]
}

// NewPointerHub 创建分发器
func NewPointerHub() *PointerHub {
	return &PointerHub{}
}

// OnMove 实现 PointerSource
func (h *PointerHub) OnMove(fn func(utils.Point)) func() {
	return h.move.add(fn)
}

// OnTouchMove 实现 PointerSource
func (h *PointerHub) OnTouchMove(fn func([]utils.Point)) func() {
	return h.touch.add(fn)
}

// OnLeave 实现 PointerSource
func (h *PointerHub) OnLeave(fn func()) func() {
	return h.leave.add(fn)
}

// EmitMove 分发鼠标移动事件
func (h *PointerHub) EmitMove(p utils.Point) {
	for _, fn := range h.move.snapshot() {
		fn(p)
	}
}

// EmitTouchMove 分发触摸移动事件
func (h *PointerHub) EmitTouchMove(touches []utils.Point) {
	for _, fn := range h.touch.snapshot() {
		fn(touches)
	}
}

// EmitLeave 分发离开事件
func (h *PointerHub) EmitLeave() {
	for _, fn := range h.leave.snapshot() {
		fn()
	}
}

// Subscribers 返回当前订阅总数（三类事件之和）
func (h *PointerHub) Subscribers() int {
	return len(h.move.entries) + len(h.touch.entries) + len(h.leave.entries)
}

type handlerEntry[F any] struct {
	id uint64
	fn F
}

type handlerList[F any] struct {
	nextID  uint64
	entries []handlerEntry[F]
}

func (l *handlerList[F]) add(fn F) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[F]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *handlerList[F]) remove(id uint64) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *handlerList[F]) snapshot() []F {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]F, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.fn
	}
	return out
}
