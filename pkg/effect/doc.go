// Package effect 实现跟随指针的星光拖尾效果的核心逻辑
//
// # 组成
//
//   - StarTrail: 指针事件协调器，持有 TrackingState，处理 move / touch-move / leave
//   - ShouldSpawnStar: 星星节流判断（时间阈值或距离阈值）
//   - InterpolateGlow: 在上一个与当前指针位置之间插值光晕点
//   - VisualManager: 在宿主 Surface 上生成临时视觉元素，并在延迟后移除
//   - RemovalQueue: 基于时钟的延迟动作队列，由宿主每帧驱动
//   - PointerHub: 单线程的指针事件分发器
//
// # 线程模型
//
// 所有方法都假定在宿主的单一逻辑线程上调用（ebiten 的 Update，
// 或终端宿主的事件循环）。RemovalQueue 在同一线程的帧边界触发，
// 因此不需要任何锁。
//
// # 使用
//
//	queue := effect.NewRemovalQueue(clock)
//	visuals := effect.NewVisualManager(surface, queue)
//	trail, err := effect.NewStarTrail(cfg.Trail, visuals, clock, rng)
//	detach := trail.Attach(hub)
//	defer detach()
//
//	// 每帧：
//	queue.Update(clock.Now())
package effect
