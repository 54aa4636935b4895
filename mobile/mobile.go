//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.gooey -o build/android/gooey.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Gooey.xcframework -v ./mobile
//
// ebiten.SetFullscreen 在移动端不起作用：隐藏状态栏需要宿主工程完成
// （Android 在 Activity 中使用 WindowInsetsController 隐藏系统栏，
// iOS 在 ViewController 中让 prefersStatusBarHidden 返回 true）。
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/sirupsen/logrus"

	"github.com/decker502/gooey/pkg/app"
	"github.com/decker502/gooey/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gooeyApp, err := app.NewApp(app.Config{Verbose: false})
	if err != nil {
		logrus.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gooeyApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
