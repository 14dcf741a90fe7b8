package termhost

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/utils"
)

// tickInterval 移除队列和重绘的周期，约 60 FPS
const tickInterval = 16 * time.Millisecond

// Options 终端宿主运行参数
type Options struct {
	Settings config.AppConfig
	// Clock 为 nil 时使用系统时钟
	Clock utils.Clock
	// RNG 为 nil 时按当前时间播种
	RNG utils.RandomSource
}

// Run 在已初始化的 screen 上运行事件循环，直到 ctx 结束或用户退出
//
// screen 的 Init/Fini 由调用方负责。事件由单独的 goroutine 读取后送入
// 主循环，所有状态只在主循环中修改。
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	clock := opts.Clock
	if clock == nil {
		clock = utils.NewSystemClock()
	}
	rng := opts.RNG
	if rng == nil {
		rng = utils.NewRandomSource(uint64(time.Now().UnixNano()))
	}

	session, err := NewSession(opts.Settings, clock, rng)
	if err != nil {
		return err
	}
	defer session.Close()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	defer screen.DisableMouse()
	defer screen.DisableFocus()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen 已 Fini
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	log.Printf("[Term] Event loop started")
	session.Draw(screen)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Term] Context done: %v", ctx.Err())
			return nil

		case ev := <-events:
			if !session.HandleEvent(ev) {
				log.Printf("[Term] Quit requested")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-ticker.C:
			session.Tick()
			session.Draw(screen)
		}
	}
}
