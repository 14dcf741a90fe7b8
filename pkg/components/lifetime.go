package components

import "time"

// LifetimeComponent 管理视觉元素的生命周期
// 用于驱动星星下落和淡出；实体的真正移除由移除队列负责
type LifetimeComponent struct {
	SpawnedAt       time.Time // 生成时刻
	MaxLifetime     float64   // 最大生命周期(秒)
	CurrentLifetime float64   // 当前已存在时间(秒)
	IsExpired       bool      // 是否已过期
}

// Progress 返回归一化进度 [0, 1]
// MaxLifetime 非正时视为已结束
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
