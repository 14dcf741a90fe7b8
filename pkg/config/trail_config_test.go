package config

import (
	"errors"
	"testing"
	"time"
)

// TestDefaultTrailConfig 默认配置应与原始效果的参数一致
func TestDefaultTrailConfig(t *testing.T) {
	cfg := DefaultTrailConfig()

	if cfg.StarAnimationDuration != 1500*time.Millisecond {
		t.Errorf("StarAnimationDuration = %v, want 1500ms", cfg.StarAnimationDuration)
	}
	if cfg.MinimumTimeBetweenStars != 250*time.Millisecond {
		t.Errorf("MinimumTimeBetweenStars = %v, want 250ms", cfg.MinimumTimeBetweenStars)
	}
	if cfg.MinimumDistanceBetweenStars != 75 {
		t.Errorf("MinimumDistanceBetweenStars = %v, want 75", cfg.MinimumDistanceBetweenStars)
	}
	if cfg.GlowDuration != 75*time.Millisecond {
		t.Errorf("GlowDuration = %v, want 75ms", cfg.GlowDuration)
	}
	if cfg.MaximumGlowPointSpacing != 10 {
		t.Errorf("MaximumGlowPointSpacing = %v, want 10", cfg.MaximumGlowPointSpacing)
	}
	if len(cfg.Sizes) != 3 || len(cfg.Animations) != 3 {
		t.Errorf("expected 3 sizes and 3 animations, got %d and %d", len(cfg.Sizes), len(cfg.Animations))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestDefaultTrailConfigIsolated 修改返回值不应影响包级默认值
func TestDefaultTrailConfigIsolated(t *testing.T) {
	cfg := DefaultTrailConfig()
	cfg.Sizes[0] = 999
	cfg.Animations[0] = "changed"

	if DefaultStarSizes[0] == 999 || DefaultStarAnimations[0] == "changed" {
		t.Error("DefaultTrailConfig must return copies of the default slices")
	}
}

func TestTrailConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TrailConfig)
	}{
		{"zero star duration", func(c *TrailConfig) { c.StarAnimationDuration = 0 }},
		{"negative min time", func(c *TrailConfig) { c.MinimumTimeBetweenStars = -time.Millisecond }},
		{"negative min distance", func(c *TrailConfig) { c.MinimumDistanceBetweenStars = -1 }},
		{"zero glow duration", func(c *TrailConfig) { c.GlowDuration = 0 }},
		{"zero spacing", func(c *TrailConfig) { c.MaximumGlowPointSpacing = 0 }},
		{"empty sizes", func(c *TrailConfig) { c.Sizes = nil }},
		{"non-positive size", func(c *TrailConfig) { c.Sizes = []float64{16, 0} }},
		{"empty animations", func(c *TrailConfig) { c.Animations = []string{} }},
		{"blank animation", func(c *TrailConfig) { c.Animations = []string{"fall-1", ""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTrailConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestZeroThresholdsAreValid 阈值为 0 是合法的（每次移动都生成星星）
func TestZeroThresholdsAreValid(t *testing.T) {
	cfg := DefaultTrailConfig()
	cfg.MinimumTimeBetweenStars = 0
	cfg.MinimumDistanceBetweenStars = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("zero thresholds should be valid: %v", err)
	}
}
