package systems

import (
	"time"

	"github.com/gonewx/startrail/pkg/components"
	"github.com/gonewx/startrail/pkg/ecs"
	"github.com/gonewx/startrail/pkg/utils"
)

// LifetimeSystem 推进视觉元素的存在时间
//
// 时间取自与移除队列相同的时钟，保证动画进度和移除时机一致。
// 过期只做标记，不销毁实体。
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(now time.Time) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime = utils.Elapsed(lifetime.SpawnedAt, now).Seconds()

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}
	}
}
