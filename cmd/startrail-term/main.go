// startrail-term 在终端里运行星光拖尾，鼠标移动驱动星星和光晕
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/startrail/internal/termhost"
	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/utils"
)

var (
	configPath = flag.String("config", "", "YAML 配置文件路径（为空使用默认配置）")
	verbose    = flag.Bool("verbose", false, "输出详细日志到 stderr（会干扰终端画面，建议重定向）")
	seed       = flag.Uint64("seed", 0, "随机种子（0 表示按当前时间播种）")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	settings := config.DefaultAppConfig()
	if *configPath != "" {
		loaded, err := config.LoadAppConfig(*configPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("配置加载失败: %v", err)
		}
		settings = *loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// 崩溃时先恢复终端，再打印堆栈
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nstartrail-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := termhost.Options{Settings: settings}
	if *seed != 0 {
		opts.RNG = utils.NewRandomSource(*seed)
	}

	runErr := termhost.Run(ctx, screen, opts)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "startrail-term: %v\n", runErr)
		os.Exit(1)
	}
}
