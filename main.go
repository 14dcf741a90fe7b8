package main

import (
	"flag"
	"log"

	"github.com/gonewx/startrail/pkg/app"
	"github.com/gonewx/startrail/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "YAML 配置文件路径（为空使用内置默认配置）")
	watch      = flag.Bool("watch", false, "监听配置文件变化并热重载")
	showHUD    = flag.Bool("hud", false, "显示星星/光晕数量等统计信息")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Uint64("seed", 0, "随机种子（0 表示按当前时间播种）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	startrail, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		Watch:      *watch,
		HUD:        *showHUD,
		Verbose:    *verbose,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer startrail.Close()

	settings := startrail.Settings()
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(startrail); err != nil {
		log.Fatal(err)
	}
}
