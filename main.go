package main

import (
	"flag"

	"github.com/decker502/gooey/pkg/app"
	"github.com/decker502/gooey/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	configPath  = flag.String("config", "", "场景配置文件路径（默认使用内嵌的 data/scene.yaml）")
	profileMode = flag.String("profile", "", "性能分析: cpu 或 mem")
)

func main() {
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logrus.Fatalf("未知的 --profile 参数: %s（可选 cpu、mem）", *profileMode)
	}

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gooeyApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		logrus.Fatalf("初始化失败: %v", err)
	}

	screen := gooeyApp.SceneConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gooeyApp); err != nil {
		logrus.Fatalf("运行失败: %v", err)
	}
}
