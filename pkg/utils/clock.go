package utils

import (
	"sync"
	"time"
)

// Clock 提供单调时钟读数
// 整个效果（节流判断、移除调度）必须共用同一个 Clock
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间（带单调时钟读数）
type SystemClock struct{}

// NewSystemClock 创建系统时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now 返回当前时间
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock 可控制的时钟，用于测试
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockClock 以给定起始时间创建模拟时钟
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now 返回当前模拟时间
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set 设置当前模拟时间
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance 将模拟时间向前推进 d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
