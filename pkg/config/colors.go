package config

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxGradientColors 渐变着色器支持的最大颜色数
const MaxGradientColors = 8

// namedColors 配置文件里允许直接使用的颜色名
var namedColors = map[string]string{
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
}

// ParseColor 解析颜色名或 #rgb / #rrggbb
func ParseColor(s string) (colorful.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// MustParseColor 同 ParseColor，解析失败时 panic
// 仅用于已经通过 Validate 的配置
func MustParseColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
