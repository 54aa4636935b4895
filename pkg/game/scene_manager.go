package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// SceneFactory 场景工厂函数类型
// 用于重新创建场景（例如重置），避免循环依赖
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 用工厂函数重新创建当前场景
//
// 创建失败时保留原场景。
func (sm *SceneManager) Reload() {
	if sm.sceneFactory == nil {
		logrus.Warnf("[SceneManager] SceneFactory 未设置，无法重新加载")
		return
	}
	scene, err := sm.sceneFactory()
	if err != nil {
		logrus.Warnf("[SceneManager] 重新加载场景失败: %v", err)
		return
	}
	sm.SwitchTo(scene)
	logrus.Debugf("[SceneManager] 场景已重新加载")
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
