package effect

import (
	"time"

	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/utils"
)

// spawnRecord 记录一次 Spawn 调用
type spawnRecord struct {
	handle  Handle
	kind    VisualKind
	pos     utils.Point
	variant Variant
}

// fakeSurface 记录所有生成与移除的测试用 Surface
type fakeSurface struct {
	next    Handle
	spawned []spawnRecord
	removed []Handle
	live    map[Handle]spawnRecord
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{live: make(map[Handle]spawnRecord)}
}

func (s *fakeSurface) Spawn(kind VisualKind, pos utils.Point, variant Variant) Handle {
	s.next++
	rec := spawnRecord{handle: s.next, kind: kind, pos: pos, variant: variant}
	s.spawned = append(s.spawned, rec)
	s.live[s.next] = rec
	return s.next
}

func (s *fakeSurface) Remove(h Handle) {
	s.removed = append(s.removed, h)
	delete(s.live, h)
}

func (s *fakeSurface) count(kind VisualKind) int {
	n := 0
	for _, rec := range s.spawned {
		if rec.kind == kind {
			n++
		}
	}
	return n
}

func (s *fakeSurface) liveCount(kind VisualKind) int {
	n := 0
	for _, rec := range s.live {
		if rec.kind == kind {
			n++
		}
	}
	return n
}

func (s *fakeSurface) stars() []spawnRecord {
	var out []spawnRecord
	for _, rec := range s.spawned {
		if rec.kind == KindStar {
			out = append(out, rec)
		}
	}
	return out
}

// fixedSource 始终返回同一索引（对 n 取模）的随机源
type fixedSource struct{ index int }

func (f fixedSource) IntN(n int) int { return f.index % n }

// cyclingSource 依次返回 0, 1, 2, ... 的随机源
type cyclingSource struct{ next int }

func (c *cyclingSource) IntN(n int) int {
	v := c.next % n
	c.next++
	return v
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testRig 组装一套使用模拟时钟的协调器
type testRig struct {
	clock   *utils.MockClock
	surface *fakeSurface
	queue   *RemovalQueue
	hub     *PointerHub
	trail   *StarTrail
}

func newTestRig(cfg config.TrailConfig, rng utils.RandomSource) *testRig {
	clock := utils.NewMockClock(testEpoch)
	surface := newFakeSurface()
	queue := NewRemovalQueue(clock)
	trail, err := NewStarTrail(cfg, NewVisualManager(surface, queue), clock, rng)
	if err != nil {
		panic(err)
	}
	return &testRig{
		clock:   clock,
		surface: surface,
		queue:   queue,
		hub:     NewPointerHub(),
		trail:   trail,
	}
}

// moveAt 把时钟设置为 T0+offset 后分发一次鼠标移动
func (r *testRig) moveAt(offset time.Duration, x, y float64) {
	r.clock.Set(testEpoch.Add(offset))
	r.hub.EmitMove(utils.Point{X: x, Y: y})
}
