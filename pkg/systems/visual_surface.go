package systems

import (
	"time"

	"github.com/gonewx/startrail/pkg/components"
	"github.com/gonewx/startrail/pkg/ecs"
	"github.com/gonewx/startrail/pkg/effect"
	"github.com/gonewx/startrail/pkg/utils"
)

// VisualSurface 基于 ECS 的视觉表面
//
// Spawn 为每个视觉元素创建一个实体(位置 + 外观 + 生命周期)，
// Remove 标记实体待删除，帧末由 RemoveMarkedEntities 统一清理。
// 只能在宿主的单一逻辑线程上使用。
type VisualSurface struct {
	entityManager *ecs.EntityManager
	clock         utils.Clock
	lifetimes     map[effect.VisualKind]time.Duration
}

// NewVisualSurface 创建视觉表面
// starLifetime/glowLifetime 只用于驱动动画进度，移除时机由调度器决定
func NewVisualSurface(em *ecs.EntityManager, clock utils.Clock, starLifetime, glowLifetime time.Duration) *VisualSurface {
	return &VisualSurface{
		entityManager: em,
		clock:         clock,
		lifetimes: map[effect.VisualKind]time.Duration{
			effect.KindStar: starLifetime,
			effect.KindGlow: glowLifetime,
		},
	}
}

// SetLifetimes 更新后续生成元素的动画时长(配置热重载后调用)
func (s *VisualSurface) SetLifetimes(starLifetime, glowLifetime time.Duration) {
	s.lifetimes[effect.KindStar] = starLifetime
	s.lifetimes[effect.KindGlow] = glowLifetime
}

// Spawn 实现 effect.Surface
func (s *VisualSurface) Spawn(kind effect.VisualKind, pos utils.Point, variant effect.Variant) effect.Handle {
	id := s.entityManager.CreateEntity()
	handle := effect.Handle(id)

	s.entityManager.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	s.entityManager.AddComponent(id, &components.VisualComponent{
		Kind:      kind,
		Size:      variant.Size,
		Animation: variant.Animation,
		Handle:    handle,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		SpawnedAt:   s.clock.Now(),
		MaxLifetime: s.lifetimes[kind].Seconds(),
	})

	return handle
}

// Remove 实现 effect.Surface，重复移除是空操作
func (s *VisualSurface) Remove(h effect.Handle) {
	s.entityManager.DestroyEntity(ecs.EntityID(h))
}

// Count 返回指定种类的存活元素数量
func (s *VisualSurface) Count(kind effect.VisualKind) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.VisualComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		visual, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
		if ok && visual.Kind == kind {
			count++
		}
	}
	return count
}
