package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// 窗口默认尺寸（逻辑像素）
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultWindowTitle  = "startrail"
)

// AppConfig 应用完整配置，对应一个 YAML 文件
type AppConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Trail      TrailConfig      `yaml:"trail"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AppearanceConfig 外观配置，颜色使用 CSS 颜色字符串
// 例如 "#fff4c2"、"rgba(180, 200, 255, 0.55)"、"gold"
type AppearanceConfig struct {
	Background    string  `yaml:"background"`    // 背景色
	StarColor     string  `yaml:"starColor"`     // 星星初始颜色
	StarFadeColor string  `yaml:"starFadeColor"` // 星星消失前渐变到的颜色
	GlowColor     string  `yaml:"glowColor"`     // 光晕点颜色
	GlowRadius    float64 `yaml:"glowRadius"`    // 光晕点半径（像素）
}

// Palette 解析后的颜色集合
type Palette struct {
	Background    color.NRGBA
	StarColor     color.NRGBA
	StarFadeColor color.NRGBA
	GlowColor     color.NRGBA
}

// DefaultAppConfig 返回默认应用配置
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Appearance: AppearanceConfig{
			Background:    "#0b0d17",
			StarColor:     "#fff4c2",
			StarFadeColor: "#8fa8ff",
			GlowColor:     "rgba(180, 200, 255, 0.55)",
			GlowRadius:    3.5,
		},
		Trail: DefaultTrailConfig(),
	}
}

// LoadAppConfig 从 YAML 文件加载应用配置
// 文件中缺省的字段保留默认值
func LoadAppConfig(filePath string) (*AppConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseAppConfig(data)
}

// ParseAppConfig 解析 YAML 内容并校验
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate 校验应用配置
func (c AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Appearance.GlowRadius <= 0 {
		return fmt.Errorf("%w: glowRadius must be > 0, got %v", ErrInvalidConfig, c.Appearance.GlowRadius)
	}
	if _, err := c.Appearance.Palette(); err != nil {
		return err
	}
	return c.Trail.Validate()
}

// Palette 解析外观配置中的全部颜色
func (a AppearanceConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"background", a.Background, &p.Background},
		{"starColor", a.StarColor, &p.StarColor},
		{"starFadeColor", a.StarFadeColor, &p.StarFadeColor},
		{"glowColor", a.GlowColor, &p.GlowColor},
	}

	for _, f := range fields {
		c, err := ParseColor(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseColor 把 CSS 颜色字符串解析为 color.NRGBA
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
