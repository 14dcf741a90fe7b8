//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 的行为
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("STARTRAIL_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("期望桌面端 IsMobile() 返回 false")
	}

	t.Setenv("STARTRAIL_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("期望设置模拟环境变量后 IsMobile() 返回 true")
	}
}
