package effect

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/utils"
)

// TrackingState 协调器独占的可变状态
// Attach 时创建，Detach 时丢弃
type TrackingState struct {
	LastStarTimestamp time.Time   // 最近一颗星的生成时间
	LastStarPosition  utils.Point // 最近一颗星的位置，与时间戳同时更新
	LastMousePosition utils.Point // 最近一次指针采样；原点表示尚无真实采样
	StarSequence      int         // 已生成星星数量，用于轮换动画
}

type trailPhase int

const (
	phaseDetached trailPhase = iota // 初始状态
	phaseAttached
	phaseClosed // Detach 之后的终止状态
)

// StarTrail 指针事件协调器
//
// 生命周期：Detached → Attached → Detached(终止)。
// 每个移动事件依次：必要时修正 LastMousePosition，判断是否生成星星，
// 从 LastMousePosition 到当前位置插值光晕点，最后更新 LastMousePosition。
type StarTrail struct {
	config  config.TrailConfig
	visuals *VisualManager
	clock   utils.Clock
	rng     utils.RandomSource

	phase        trailPhase
	state        *TrackingState
	unsubscribes []func()
}

// NewStarTrail 创建协调器
//
// 参数：
//   - cfg: 拖尾配置，构造后不再修改
//   - visuals: 视觉元素生命周期管理器
//   - clock: 时钟，nil 时使用系统时钟
//   - rng: 随机源，用于选择星星尺寸；nil 时使用按当前时间播种的随机源
func NewStarTrail(cfg config.TrailConfig, visuals *VisualManager, clock utils.Clock, rng utils.RandomSource) (*StarTrail, error) {
	if visuals == nil {
		return nil, errors.New("visual manager cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("star trail config: %w", err)
	}
	if clock == nil {
		clock = utils.NewSystemClock()
	}
	if rng == nil {
		rng = utils.NewRandomSource(uint64(time.Now().UnixNano()))
	}

	cfg.Sizes = append([]float64(nil), cfg.Sizes...)
	cfg.Animations = append([]string(nil), cfg.Animations...)

	for _, name := range cfg.Animations {
		if !HasStarAnimation(name) {
			log.Printf("[StarTrail] Unknown animation %q, renderers fall back to %s", name, DefaultStarAnimation)
		}
	}

	return &StarTrail{
		config:  cfg,
		visuals: visuals,
		clock:   clock,
		rng:     rng,
	}, nil
}

// Config 返回协调器使用的配置
func (t *StarTrail) Config() config.TrailConfig {
	return t.config
}

// Attach 订阅指针事件并初始化 TrackingState，返回拆除函数
//
// 每个 StarTrail 只能 Attach 一次；重复 Attach 属于调用契约违规，直接 panic。
// 返回的拆除函数等价于 Detach，可以重复调用。
func (t *StarTrail) Attach(src PointerSource) (detach func()) {
	if src == nil {
		panic("effect: StarTrail.Attach called with nil PointerSource")
	}
	switch t.phase {
	case phaseAttached:
		panic("effect: StarTrail.Attach called on an attached trail")
	case phaseClosed:
		panic("effect: StarTrail.Attach called on a detached trail")
	}

	t.state = &TrackingState{
		LastStarTimestamp: t.clock.Now(),
		LastStarPosition:  utils.Origin,
		LastMousePosition: utils.Origin,
		StarSequence:      0,
	}
	t.unsubscribes = []func(){
		src.OnMove(t.HandleMove),
		src.OnTouchMove(t.HandleTouchMove),
		src.OnLeave(t.HandleLeave),
	}
	t.phase = phaseAttached

	log.Printf("[StarTrail] Attached (minTime=%v, minDistance=%.1f, glowSpacing=%.1f)",
		t.config.MinimumTimeBetweenStars, t.config.MinimumDistanceBetweenStars, t.config.MaximumGlowPointSpacing)

	return t.Detach
}

// Detach 取消全部订阅并丢弃 TrackingState
// 已安排的移除动作不会被取消，它们会按各自的时间继续执行
func (t *StarTrail) Detach() {
	if t.phase != phaseAttached {
		return
	}

	for _, unsubscribe := range t.unsubscribes {
		unsubscribe()
	}
	t.unsubscribes = nil

	stars := t.state.StarSequence
	t.state = nil
	t.phase = phaseClosed

	log.Printf("[StarTrail] Detached after %d stars", stars)
}

// IsAttached 是否处于 Attached 状态
func (t *StarTrail) IsAttached() bool {
	return t.phase == phaseAttached
}

// State 返回 TrackingState 的副本；未 Attach 时 ok 为 false
func (t *StarTrail) State() (state TrackingState, ok bool) {
	if t.state == nil {
		return TrackingState{}, false
	}
	return *t.state, true
}

// HandleMove 处理一次鼠标移动
func (t *StarTrail) HandleMove(current utils.Point) {
	state := t.mustState("HandleMove")

	// 第一次采样或刚离开过：直接以当前位置为起点，避免从原点拉出一条长光晕
	if state.LastMousePosition.IsOrigin() {
		state.LastMousePosition = current
	}

	now := t.clock.Now()
	if ShouldSpawnStar(t.config, *state, current, now) {
		t.spawnStar(state, current, now)
	}

	t.spawnGlow(state.LastMousePosition, current)
	state.LastMousePosition = current
}

// HandleTouchMove 处理一次触摸移动，只使用主触摸点
// 没有触摸点时忽略该事件
func (t *StarTrail) HandleTouchMove(touches []utils.Point) {
	t.mustState("HandleTouchMove")
	if len(touches) == 0 {
		return
	}
	t.HandleMove(touches[0])
}

// HandleLeave 指针离开宿主表面，把 LastMousePosition 重置为原点
// 重新进入时不会从离开位置拉出一条横跨屏幕的光晕
func (t *StarTrail) HandleLeave() {
	state := t.mustState("HandleLeave")
	state.LastMousePosition = utils.Origin
}

// spawnStar 生成星星、安排移除并同时更新时间戳与位置
func (t *StarTrail) spawnStar(state *TrackingState, pos utils.Point, now time.Time) {
	variant := Variant{
		Size:      utils.SelectRandom(t.rng, t.config.Sizes),
		Animation: t.config.Animations[state.StarSequence%len(t.config.Animations)],
	}
	state.StarSequence++

	t.visuals.SpawnTransient(KindStar, pos, variant, t.config.StarAnimationDuration)

	state.LastStarTimestamp = now
	state.LastStarPosition = pos
}

// spawnGlow 在 from 与 to 之间生成光晕点
func (t *StarTrail) spawnGlow(from, to utils.Point) {
	for _, p := range InterpolateGlow(from, to, t.config.MaximumGlowPointSpacing) {
		t.visuals.SpawnTransient(KindGlow, p, Variant{}, t.config.GlowDuration)
	}
}

// mustState 未 Attach 时处理事件属于集成错误，立即 panic 以便尽早暴露
func (t *StarTrail) mustState(op string) *TrackingState {
	if t.state == nil {
		panic(fmt.Sprintf("effect: StarTrail.%s called while detached", op))
	}
	return t.state
}
