package termhost

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/effect"
	"github.com/gonewx/startrail/pkg/utils"
)

// Session 终端宿主的全部状态，只能在事件循环所在的 goroutine 上使用
type Session struct {
	clock   utils.Clock
	surface *Surface
	queue   *effect.RemovalQueue
	hub     *effect.PointerHub
	trail   *effect.StarTrail

	lastX, lastY int
	hasCell      bool
}

// NewSession 组装表面、移除队列和协调器，并把协调器挂到指针分发器上
func NewSession(settings config.AppConfig, clock utils.Clock, rng utils.RandomSource) (*Session, error) {
	surface, err := NewSurface(clock, settings.Appearance, settings.Trail)
	if err != nil {
		return nil, err
	}

	queue := effect.NewRemovalQueue(clock)
	hub := effect.NewPointerHub()

	trail, err := effect.NewStarTrail(settings.Trail, effect.NewVisualManager(surface, queue), clock, rng)
	if err != nil {
		return nil, err
	}
	trail.Attach(hub)

	return &Session{
		clock:   clock,
		surface: surface,
		queue:   queue,
		hub:     hub,
		trail:   trail,
	}, nil
}

// HandleEvent 处理一个终端事件，返回 false 表示应退出
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		// 同一单元内的重复报告不算移动
		if s.hasCell && x == s.lastX && y == s.lastY {
			return true
		}
		s.lastX, s.lastY, s.hasCell = x, y, true
		s.hub.EmitMove(CellToPixel(x, y))

	case *tcell.EventFocus:
		if !ev.Focused {
			s.hasCell = false
			s.hub.EmitLeave()
		}

	case *tcell.EventResize:
		log.Printf("[Term] Resized")
	}
	return true
}

// Tick 执行到期的移除
func (s *Session) Tick() int {
	return s.queue.Update(s.clock.Now())
}

// Draw 重绘整个屏幕
func (s *Session) Draw(screen tcell.Screen) {
	bg := s.surface.palette.Background
	screen.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))))
	screen.Clear()
	s.surface.Draw(screen, s.clock.Now())
	screen.Show()
}

// Surface 返回会话使用的视觉表面
func (s *Session) Surface() *Surface {
	return s.surface
}

// Pending 返回待执行的移除数量
func (s *Session) Pending() int {
	return s.queue.Pending()
}

// Close 拆除协调器，已安排的移除保留在队列中
func (s *Session) Close() {
	s.trail.Detach()
}
