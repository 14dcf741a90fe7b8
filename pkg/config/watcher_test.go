package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsTargetChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "startrail.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(target, []byte("trail: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// 其他文件的变化不应被报告
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(target, []byte("trail:\n  glowDuration: 90ms\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case path := <-w.Events:
		abs, _ := filepath.Abs(target)
		if path != abs {
			t.Errorf("event path = %q, want %q", path, abs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "startrail.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, changed := w.Poll(); changed {
		t.Error("closed watcher should not report changes")
	}
}

// TestWatcherCoalescesBurstAfterLastWrite 连续写入只通知一次，且在最后一次写入之后
func TestWatcherCoalescesBurstAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "startrail.yaml")
	if err := os.WriteFile(target, []byte("trail: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	var lastWrite time.Time
	for i := 0; i < 5; i++ {
		content := []byte("trail:\n  glowDuration: " + string(rune('1'+i)) + "0ms\n")
		if err := os.WriteFile(target, content, 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		lastWrite = time.Now()
		time.Sleep(watchDebounce / 4)
	}

	select {
	case <-w.Events:
		if elapsed := time.Since(lastWrite); elapsed < watchDebounce/2 {
			t.Errorf("expected notification about %v after the last write, got %v", watchDebounce, elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "trail:\n  glowDuration: 50ms\n" {
		t.Errorf("expected final content on notification, got %q", data)
	}

	select {
	case <-w.Events:
		t.Error("burst should produce a single notification")
	case <-time.After(3 * watchDebounce):
	}
}
