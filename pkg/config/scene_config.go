package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/gooey/pkg/animation"
	"github.com/decker502/gooey/pkg/embedded"
	"github.com/decker502/gooey/pkg/types"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EmbeddedSceneConfigPath 内嵌的默认场景配置
const EmbeddedSceneConfigPath = "data/scene.yaml"

// ColorMatrixSize 4x5 颜色矩阵的元素个数
const ColorMatrixSize = 20

// SceneConfig 场景配置
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	Screen   ScreenConfig           `yaml:"screen"`
	Circle   CircleConfig           `yaml:"circle"`
	Paint    PaintConfig            `yaml:"paint"`
	Gradient GradientConfig         `yaml:"gradient"`
	Spring   animation.SpringConfig `yaml:"spring"`

	// Background 背景色（CSS 十六进制或颜色名）
	Background string `yaml:"background"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Center 返回屏幕中心，即圆的初始位置和回弹目标
func (s ScreenConfig) Center() types.ScreenPoint {
	return types.ScreenPoint{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}
}

// CircleConfig 圆的尺寸
type CircleConfig struct {
	Radius float64 `yaml:"radius"`
}

// PaintConfig 图层效果：模糊 + 颜色矩阵
type PaintConfig struct {
	// Blur 高斯模糊 sigma（逻辑像素）
	Blur float64 `yaml:"blur"`
	// ColorMatrix 4x5 颜色矩阵，行优先
	ColorMatrix []float64 `yaml:"colorMatrix"`
	// Downsample 离屏图层降采样倍数
	Downsample int `yaml:"downsample"`
}

// GradientConfig 扫描渐变（锥形渐变）
type GradientConfig struct {
	Center types.ScreenPoint `yaml:"center"`
	Colors []string          `yaml:"colors"`
}

// GooeyColorMatrix 粘连效果的颜色矩阵：RGB 不变，alpha' = 120*alpha - 60
func GooeyColorMatrix() []float64 {
	return []float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 120, -60,
	}
}

// DefaultSceneConfig 返回内置默认配置（与 data/scene.yaml 一致）
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Screen: ScreenConfig{Width: 374, Height: 666, Title: "Gooey"},
		Circle: CircleConfig{Radius: 80},
		Paint: PaintConfig{
			Blur:        40,
			ColorMatrix: GooeyColorMatrix(),
			Downsample:  4,
		},
		Gradient: GradientConfig{
			Center: types.ScreenPoint{X: 0, Y: 0},
			Colors: []string{"cyan", "magenta", "cyan"},
		},
		Spring:     animation.DefaultSpringConfig(),
		Background: "#FFFFFF",
	}
}

// ParseSceneConfig 解析 YAML 并校验
//
// 文件中未出现的字段保留默认值。
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// LoadSceneConfig 从文件系统加载场景配置（用于 --config 参数）
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("[Config] 加载场景配置: %s", path)
	return cfg, nil
}

// LoadEmbeddedSceneConfig 加载内嵌的默认场景配置
//
// 调用前必须先调用 embedded.Init()。
func LoadEmbeddedSceneConfig() (*SceneConfig, error) {
	data, err := embedded.ReadFile(EmbeddedSceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("[Config] 加载内嵌场景配置: %s", EmbeddedSceneConfigPath)
	return cfg, nil
}

// Validate 验证配置有效性
func (c *SceneConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if !isFinite(c.Circle.Radius) || c.Circle.Radius <= 0 {
		return fmt.Errorf("circle radius must be > 0, got %.1f", c.Circle.Radius)
	}
	if !isFinite(c.Paint.Blur) || c.Paint.Blur < 0 {
		return fmt.Errorf("blur must be >= 0, got %.1f", c.Paint.Blur)
	}
	if len(c.Paint.ColorMatrix) != ColorMatrixSize {
		return fmt.Errorf("colorMatrix must have %d elements, got %d", ColorMatrixSize, len(c.Paint.ColorMatrix))
	}
	for i, v := range c.Paint.ColorMatrix {
		if !isFinite(v) {
			return fmt.Errorf("colorMatrix element %d must be finite, got %v", i, v)
		}
	}
	if !isFinite(c.Gradient.Center.X) || !isFinite(c.Gradient.Center.Y) {
		return fmt.Errorf("gradient center must be finite, got %s", c.Gradient.Center)
	}
	if c.Paint.Downsample < 1 {
		return fmt.Errorf("downsample must be >= 1, got %d", c.Paint.Downsample)
	}
	if len(c.Gradient.Colors) < 2 {
		return fmt.Errorf("gradient needs at least 2 colors, got %d", len(c.Gradient.Colors))
	}
	if len(c.Gradient.Colors) > MaxGradientColors {
		return fmt.Errorf("gradient supports at most %d colors, got %d", MaxGradientColors, len(c.Gradient.Colors))
	}
	for i, s := range c.Gradient.Colors {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("gradient color %d: %w", i, err)
		}
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if err := c.Spring.Validate(); err != nil {
		return err
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
