package effect

import (
	"time"

	"github.com/gonewx/startrail/pkg/utils"
)

// VisualKind 临时视觉元素的种类
type VisualKind int

const (
	// KindStar 节流后生成的星星
	KindStar VisualKind = iota
	// KindGlow 沿指针轨迹插值的光晕点
	KindGlow
)

// String 返回种类名称
func (k VisualKind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindGlow:
		return "glow"
	default:
		return "unknown"
	}
}

// Variant 视觉元素的显示变体
// 星星携带尺寸和动画名；光晕点为零值
type Variant struct {
	Size      float64
	Animation string
}

// Handle 宿主 Surface 返回的视觉元素句柄
type Handle uint64

// Surface 宿主视觉表面
// 核心逻辑只依赖这两个能力，不关心具体的渲染后端
type Surface interface {
	// Spawn 立即在 pos 处创建一个 kind 类型的临时视觉元素
	Spawn(kind VisualKind, pos utils.Point, variant Variant) Handle
	// Remove 移除视觉元素；对已移除的句柄调用应为空操作
	Remove(h Handle)
}

// Scheduler 延迟动作调度器
type Scheduler interface {
	// Schedule 在 delay 之后执行 fn，不提供取消
	Schedule(delay time.Duration, fn func())
}

// VisualManager 视觉元素生命周期管理器
// 负责在 Surface 上生成元素，并通过 Scheduler 安排移除
type VisualManager struct {
	surface   Surface
	scheduler Scheduler
}

// NewVisualManager 创建生命周期管理器
func NewVisualManager(surface Surface, scheduler Scheduler) *VisualManager {
	return &VisualManager{
		surface:   surface,
		scheduler: scheduler,
	}
}

// Spawn 在宿主表面生成一个视觉元素
func (m *VisualManager) Spawn(kind VisualKind, pos utils.Point, variant Variant) Handle {
	return m.surface.Spawn(kind, pos, variant)
}

// ScheduleRemoval 在 delay 之后移除 h
// 即发即忘：调用者不会等待，移除之间互相独立
func (m *VisualManager) ScheduleRemoval(h Handle, delay time.Duration) {
	surface := m.surface
	m.scheduler.Schedule(delay, func() {
		surface.Remove(h)
	})
}

// SpawnTransient 生成元素并安排在 lifetime 之后移除
func (m *VisualManager) SpawnTransient(kind VisualKind, pos utils.Point, variant Variant, lifetime time.Duration) Handle {
	h := m.Spawn(kind, pos, variant)
	m.ScheduleRemoval(h, lifetime)
	return h
}
