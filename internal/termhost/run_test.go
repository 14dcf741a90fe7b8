package termhost

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/startrail/pkg/config"
)

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newSimScreen(t)

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), screen, Options{Settings: config.DefaultAppConfig()})
	}()

	screen.InjectMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("期望正常退出, 实际错误: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("期望 Esc 后事件循环退出")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	screen := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, Options{Settings: config.DefaultAppConfig()})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("期望正常退出, 实际错误: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("期望取消后事件循环退出")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	screen := newSimScreen(t)
	settings := config.DefaultAppConfig()
	settings.Trail.Animations = nil

	if err := Run(context.Background(), screen, Options{Settings: settings}); err == nil {
		t.Error("期望无效配置返回错误")
	}
}
