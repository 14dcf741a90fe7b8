// Package app 提供星光拖尾应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/ecs"
	"github.com/gonewx/startrail/pkg/effect"
	"github.com/gonewx/startrail/pkg/embedded"
	"github.com/gonewx/startrail/pkg/systems"
	"github.com/gonewx/startrail/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudFontSize HUD 字号
const hudFontSize = 14

// Config 定义应用启动配置
type Config struct {
	// ConfigPath YAML 配置文件路径，为空则使用内置默认配置
	ConfigPath string
	// Watch 监听配置文件变化并热重载
	Watch bool
	// HUD 显示左上角统计信息
	HUD bool
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示按当前时间播种
	Seed uint64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg      Config
	settings config.AppConfig
	clock    utils.Clock
	rng      utils.RandomSource

	entityManager *ecs.EntityManager
	surface       *systems.VisualSurface
	queue         *effect.RemovalQueue
	visuals       *effect.VisualManager
	hub           *effect.PointerHub
	trail         *effect.StarTrail
	tracker       *systems.PointerTracker

	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem
	hud            *systems.HUD
	palette        config.Palette

	watcher *config.Watcher

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// ConfigPath 为空时读取内置默认配置；调用前应先调用 embedded.Init()，
// 未初始化时退回到代码中的默认值。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := loadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a, err := newApp(cfg, *settings, utils.NewSystemClock(), utils.NewRandomSource(seed))
	if err != nil {
		return nil, err
	}

	if cfg.HUD {
		hud, err := systems.NewHUD(hudFontSize)
		if err != nil {
			return nil, err
		}
		a.hud = hud
	}

	if cfg.Watch {
		if cfg.ConfigPath == "" {
			log.Printf("[Config] --watch ignored: no config file given")
		} else {
			watcher, err := config.NewWatcher(cfg.ConfigPath)
			if err != nil {
				return nil, fmt.Errorf("配置文件监听失败: %w", err)
			}
			a.watcher = watcher
			log.Printf("[Config] Watching %s", cfg.ConfigPath)
		}
	}

	return a, nil
}

// newApp 组装 ECS、核心协调器和各个系统，不触碰窗口或文件系统
func newApp(cfg Config, settings config.AppConfig, clock utils.Clock, rng utils.RandomSource) (*App, error) {
	palette, err := settings.Appearance.Palette()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	surface := systems.NewVisualSurface(em, clock, settings.Trail.StarAnimationDuration, settings.Trail.GlowDuration)
	queue := effect.NewRemovalQueue(clock)
	visuals := effect.NewVisualManager(surface, queue)
	hub := effect.NewPointerHub()

	a := &App{
		cfg:            cfg,
		settings:       settings,
		clock:          clock,
		rng:            rng,
		entityManager:  em,
		surface:        surface,
		queue:          queue,
		visuals:        visuals,
		hub:            hub,
		tracker:        systems.NewPointerTracker(hub, utils.IsMobile()),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		renderSystem:   systems.NewRenderSystem(em, palette, settings.Appearance.GlowRadius),
		palette:        palette,
	}

	trail, err := effect.NewStarTrail(settings.Trail, visuals, clock, rng)
	if err != nil {
		return nil, err
	}
	trail.Attach(hub)
	a.trail = trail

	log.Printf("[App] Started (%dx%d, sizes=%v, animations=%v)",
		settings.Window.Width, settings.Window.Height, settings.Trail.Sizes, settings.Trail.Animations)
	return a, nil
}

// loadSettings 按优先级加载配置：指定文件 > 内置默认文件 > 代码默认值
func loadSettings(path string) (*config.AppConfig, error) {
	if path != "" {
		settings, err := config.LoadAppConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded %s", path)
		return settings, nil
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) {
		defaults := config.DefaultAppConfig()
		log.Printf("[Config] Using built-in defaults")
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("内置配置读取失败: %w", err)
	}

	settings, err := config.ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置配置解析失败: %w", err)
	}
	log.Printf("[Config] Loaded embedded %s", embedded.DefaultConfigPath)
	return settings, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if a.watcher != nil {
		if path, changed := a.watcher.Poll(); changed {
			before := a.settings.Window
			a.reload(path)
			if a.settings.Window != before {
				ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
				ebiten.SetWindowTitle(a.settings.Window.Title)
			}
		}
	}

	a.step(systems.ReadPointerSample(a.settings.Window.Width, a.settings.Window.Height))
	return nil
}

// step 执行一个 tick：指针事件 → 到期移除 → 生命周期 → 清理实体
func (a *App) step(sample utils.PointerSample) {
	a.tracker.Update(sample)

	now := a.clock.Now()
	a.queue.Update(now)
	a.lifetimeSystem.Update(now)
	a.entityManager.RemoveMarkedEntities()
}

// reload 从文件重新加载配置
//
// 拖尾配置在协调器生命周期内不可变，所以这里拆除旧协调器、用新配置重新 Attach。
// 已安排的移除不受影响。加载失败时保留当前配置。
func (a *App) reload(path string) {
	settings, err := config.LoadAppConfig(path)
	if err != nil {
		log.Printf("[Config] Reload of %s failed, keeping current config: %v", path, err)
		return
	}
	if err := a.apply(*settings); err != nil {
		log.Printf("[Config] Reload of %s rejected: %v", path, err)
		return
	}
	log.Printf("[Config] Reloaded %s", path)
}

// apply 切换到新配置
func (a *App) apply(settings config.AppConfig) error {
	palette, err := settings.Appearance.Palette()
	if err != nil {
		return err
	}
	trail, err := effect.NewStarTrail(settings.Trail, a.visuals, a.clock, a.rng)
	if err != nil {
		return err
	}

	a.trail.Detach()
	a.tracker.Reset()
	trail.Attach(a.hub)
	a.trail = trail

	a.surface.SetLifetimes(settings.Trail.StarAnimationDuration, settings.Trail.GlowDuration)
	a.renderSystem.SetAppearance(palette, settings.Appearance.GlowRadius)
	a.palette = palette
	a.settings = settings
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.palette.Background)
	a.renderSystem.Draw(screen)

	if a.hud != nil {
		a.hud.Draw(screen, a.Stats())
	}
}

// Stats 返回当前统计数据
func (a *App) Stats() systems.HUDStats {
	return systems.HUDStats{
		Stars:    a.surface.Count(effect.KindStar),
		Glows:    a.surface.Count(effect.KindGlow),
		Pending:  a.queue.Pending(),
		Attached: a.trail.IsAttached(),
		TPS:      ebiten.ActualTPS(),
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.Window.Width, a.settings.Window.Height
}

// Settings 返回当前生效的配置
func (a *App) Settings() config.AppConfig {
	return a.settings
}

// Close 拆除协调器并停止配置监听
func (a *App) Close() error {
	a.trail.Detach()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
