// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/gooey/pkg/config"
	"github.com/decker502/gooey/pkg/effects"
	"github.com/decker502/gooey/pkg/game"
	"github.com/decker502/gooey/pkg/scenes"
	"github.com/decker502/gooey/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// ConfigPath 场景配置文件路径，为空则使用内嵌的 data/scene.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	sceneConfig              *config.SceneConfig
	background               color.Color
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 按 verbose 设置日志级别
func ConfigureLogging(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !verbose})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// LoadSceneConfig 按启动配置加载场景配置
func LoadSceneConfig(cfg Config) (*config.SceneConfig, error) {
	if cfg.ConfigPath != "" {
		return config.LoadSceneConfig(cfg.ConfigPath)
	}
	return config.LoadEmbeddedSceneConfig()
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	sceneConfig, err := LoadSceneConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	shaders, err := effects.LoadShaders()
	if err != nil {
		return nil, fmt.Errorf("着色器加载失败: %w", err)
	}

	pointer := utils.NewPointerTracker()
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene := scenes.NewGooeyScene(sceneConfig, shaders, pointer, cfg.Verbose)
		scene.IgnoreHeldPointer()
		return scene, nil
	})
	sceneManager.SwitchTo(scenes.NewGooeyScene(sceneConfig, shaders, pointer, cfg.Verbose))

	// 桌面端模拟移动模式时全屏；真机上全屏和状态栏由宿主 Activity/ViewController 决定
	if utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	logrus.Debugf("[App] 初始化完成: %dx%d", sceneConfig.Screen.Width, sceneConfig.Screen.Height)

	return newApp(sceneManager, sceneConfig, cfg.Verbose), nil
}

// newApp 组装 App；背景色在这里解析一次，之后每帧直接使用
//
// sceneConfig 必须已经通过 Validate。
func newApp(sceneManager *game.SceneManager, sceneConfig *config.SceneConfig, verbose bool) *App {
	return &App{
		sceneManager: sceneManager,
		sceneConfig:  sceneConfig,
		background:   config.MustParseColor(sceneConfig.Background),
		verbose:      verbose,
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height)
			logrus.Debugf("[App] Delayed SetWindowSize(%d, %d)", a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) && !utils.IsMobile() {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			logrus.Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// R 重置场景
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Reload()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域使用背景色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.background)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height
}

// SceneConfig 返回生效的场景配置
func (a *App) SceneConfig() *config.SceneConfig {
	return a.sceneConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
