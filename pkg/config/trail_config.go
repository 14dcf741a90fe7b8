package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig 配置校验失败时返回的哨兵错误
// 调用者可以用 errors.Is 区分"文件读不到"和"文件内容非法"
var ErrInvalidConfig = errors.New("invalid config")

// 星光拖尾的默认参数
//
// 时间单位为毫秒，距离单位为像素（与指针事件坐标空间一致）。
// 星星尺寸按 1rem = 16px 换算：1.4rem / 1rem / 0.6rem。
const (
	DefaultStarAnimationDuration       = 1500 * time.Millisecond
	DefaultMinimumTimeBetweenStars     = 250 * time.Millisecond
	DefaultMinimumDistanceBetweenStars = 75.0
	DefaultGlowDuration                = 75 * time.Millisecond
	DefaultMaximumGlowPointSpacing     = 10.0
)

// DefaultStarSizes 默认星星尺寸（像素）
var DefaultStarSizes = []float64{22.4, 16, 9.6}

// DefaultStarAnimations 默认星星下落动画名，按生成顺序轮流使用
var DefaultStarAnimations = []string{"fall-1", "fall-2", "fall-3"}

// TrailConfig 星光拖尾配置
// 在构造协调器时固定，运行期间不会被修改
type TrailConfig struct {
	StarAnimationDuration       time.Duration `yaml:"starAnimationDuration"`       // 星星存在时长
	MinimumTimeBetweenStars     time.Duration `yaml:"minimumTimeBetweenStars"`     // 两颗星之间的最短间隔
	MinimumDistanceBetweenStars float64       `yaml:"minimumDistanceBetweenStars"` // 强制生成新星的最小移动距离
	GlowDuration                time.Duration `yaml:"glowDuration"`                // 光晕点存在时长
	MaximumGlowPointSpacing     float64       `yaml:"maximumGlowPointSpacing"`     // 相邻光晕点的最大间距
	Sizes                       []float64     `yaml:"sizes"`                       // 星星尺寸候选（随机选择）
	Animations                  []string      `yaml:"animations"`                  // 星星动画候选（轮流选择）
}

// DefaultTrailConfig 返回默认拖尾配置
// 返回的切片是副本，调用者可以自由修改
func DefaultTrailConfig() TrailConfig {
	return TrailConfig{
		StarAnimationDuration:       DefaultStarAnimationDuration,
		MinimumTimeBetweenStars:     DefaultMinimumTimeBetweenStars,
		MinimumDistanceBetweenStars: DefaultMinimumDistanceBetweenStars,
		GlowDuration:                DefaultGlowDuration,
		MaximumGlowPointSpacing:     DefaultMaximumGlowPointSpacing,
		Sizes:                       append([]float64(nil), DefaultStarSizes...),
		Animations:                  append([]string(nil), DefaultStarAnimations...),
	}
}

// Validate 校验拖尾配置的有效性
func (c TrailConfig) Validate() error {
	if c.StarAnimationDuration <= 0 {
		return fmt.Errorf("%w: starAnimationDuration must be > 0, got %v", ErrInvalidConfig, c.StarAnimationDuration)
	}
	if c.MinimumTimeBetweenStars < 0 {
		return fmt.Errorf("%w: minimumTimeBetweenStars must be >= 0, got %v", ErrInvalidConfig, c.MinimumTimeBetweenStars)
	}
	if c.MinimumDistanceBetweenStars < 0 {
		return fmt.Errorf("%w: minimumDistanceBetweenStars must be >= 0, got %v", ErrInvalidConfig, c.MinimumDistanceBetweenStars)
	}
	if c.GlowDuration <= 0 {
		return fmt.Errorf("%w: glowDuration must be > 0, got %v", ErrInvalidConfig, c.GlowDuration)
	}
	if c.MaximumGlowPointSpacing <= 0 {
		return fmt.Errorf("%w: maximumGlowPointSpacing must be > 0, got %v", ErrInvalidConfig, c.MaximumGlowPointSpacing)
	}

	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes cannot be empty", ErrInvalidConfig)
	}
	for i, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: sizes[%d] must be > 0, got %v", ErrInvalidConfig, i, size)
		}
	}

	if len(c.Animations) == 0 {
		return fmt.Errorf("%w: animations cannot be empty", ErrInvalidConfig)
	}
	for i, name := range c.Animations {
		if name == "" {
			return fmt.Errorf("%w: animations[%d] cannot be empty", ErrInvalidConfig, i)
		}
	}

	return nil
}
