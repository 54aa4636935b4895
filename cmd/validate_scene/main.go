// validate_scene 检查场景配置文件：YAML 格式、未知字段和取值范围
//
// 用法:
//
//	go run ./cmd/validate_scene [data/scene.yaml]
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/decker502/gooey/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	path := config.EmbeddedSceneConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 严格模式下拼错的字段会报错，普通解析只会忽略它们
	var strict config.SceneConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&strict); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确，没有未知字段\n")

	cfg, err := config.ParseSceneConfig(data)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 屏幕 %dx%d，中心 %s\n", cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Center())
	fmt.Printf("✅ 圆半径 %.1f，模糊 %.1f，降采样 %d\n", cfg.Circle.Radius, cfg.Paint.Blur, cfg.Paint.Downsample)
	fmt.Printf("✅ 渐变颜色 %v\n", cfg.Gradient.Colors)

	zeta := cfg.Spring.DampingRatio()
	if cfg.Spring.IsCriticallyDampedOrOver() {
		fmt.Printf("✅ 弹簧 ζ=%.3f：单调回弹\n", zeta)
	} else {
		fmt.Printf("⚠️  弹簧 ζ=%.3f：欠阻尼，回弹时会越过中心\n", zeta)
	}
}
