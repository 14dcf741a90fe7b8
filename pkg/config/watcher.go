package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce 目标文件最后一次变化之后等待的安静期
// 编辑器保存时通常连续触发 Write/Rename/Create，合并为一次通知
const watchDebounce = 100 * time.Millisecond

// Watcher 监听配置文件变化
//
// 监听的是文件所在目录而不是文件本身，这样"写临时文件再改名"式的
// 保存方式也能被捕获。Events 只会收到目标文件的路径。
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher 为指定配置文件创建监听器
func NewWatcher(filePath string) (*Watcher, error) {
	target, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	watcher := &Watcher{
		watcher: w,
		target:  target,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close 停止监听，可重复调用
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll 非阻塞地检查是否有待处理的变更
// 供游戏循环每帧调用；多次变更合并为一次
func (w *Watcher) Poll() (string, bool) {
	var (
		path    string
		changed bool
	)
	for {
		select {
		case p := <-w.Events:
			path, changed = p, true
		default:
			return path, changed
		}
	}
}

func (w *Watcher) run() {
	// 每次目标文件变化都重置计时器，安静 watchDebounce 之后才通知一次
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.isTarget(event.Name) {
				continue
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			select {
			case w.Events <- w.target:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) isTarget(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.target
}
