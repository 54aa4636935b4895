package scenes

import (
	"fmt"

	"github.com/decker502/gooey/pkg/animation"
	"github.com/decker502/gooey/pkg/components"
	"github.com/decker502/gooey/pkg/config"
	"github.com/decker502/gooey/pkg/ecs"
	"github.com/decker502/gooey/pkg/effects"
	"github.com/decker502/gooey/pkg/entities"
	"github.com/decker502/gooey/pkg/gesture"
	"github.com/decker502/gooey/pkg/systems"
	"github.com/decker502/gooey/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// GooeyScene 粘连圆场景
//
// 屏幕中心有一个固定的参考圆和一个可拖拽的圆；拖拽的圆松手后弹回中心。
// 每帧 Update 顺序：手势 -> 控制器（回调） -> 弹簧；Draw 只读取坐标。
type GooeyScene struct {
	entityManager *ecs.EntityManager
	animator      *animation.Animator

	gestureSystem *systems.GestureSystem
	dragSystem    *systems.DragSpringSystem
	springSystem  *systems.SpringSystem
	renderSystem  *systems.RenderSystem

	draggable ecs.EntityID
	target    types.ScreenPoint
	showDebug bool
}

// NewGooeyScene 创建场景
//
// 参数:
//   - cfg: 已校验的场景配置
//   - shaders: 渲染用着色器（只在 Draw 中使用）
//   - sampler: 指针输入来源
//   - showDebug: 是否绘制调试信息
func NewGooeyScene(cfg *config.SceneConfig, shaders *effects.Shaders, sampler systems.PointerSampler, showDebug bool) *GooeyScene {
	em := ecs.NewEntityManager()
	animator := animation.NewAnimator()
	center := cfg.Screen.Center()

	entities.NewReferenceCircleEntity(em, center, cfg.Circle.Radius)
	draggable := entities.NewDraggableCircleEntity(em, center, center, cfg.Circle.Radius)

	dragSystem := systems.NewDragSpringSystem(em, animator, draggable, cfg.Spring)
	recognizer := gesture.NewRecognizer(dragSystem.HitRegion(), dragSystem)

	logrus.Debugf("[GooeyScene] 场景创建完成: center=%s radius=%.1f spring ζ=%.2f",
		center, cfg.Circle.Radius, cfg.Spring.DampingRatio())

	return &GooeyScene{
		entityManager: em,
		animator:      animator,
		gestureSystem: systems.NewGestureSystem(recognizer, sampler),
		dragSystem:    dragSystem,
		springSystem:  systems.NewSpringSystem(animator),
		renderSystem:  systems.NewRenderSystem(em, effects.NewLayer(cfg), shaders),
		draggable:     draggable,
		target:        center,
		showDebug:     showDebug,
	}
}

// Update 更新场景
func (s *GooeyScene) Update(deltaTime float64) {
	s.gestureSystem.Update(deltaTime)
	s.springSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GooeyScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.showDebug {
		s.drawDebugInfo(screen)
	}
}

// IgnoreHeldPointer 场景替换旧场景时调用：
// 旧场景里仍按住的指针不会在新场景中被当成一次新的按下
func (s *GooeyScene) IgnoreHeldPointer() {
	s.gestureSystem.IgnoreHeldPointer()
}

// Position 可拖拽圆的当前中心
func (s *GooeyScene) Position() types.ScreenPoint {
	store, ok := ecs.GetComponent[*components.CoordinateStoreComponent](s.entityManager, s.draggable)
	if !ok {
		return s.target
	}
	return store.Get()
}

// Phase 当前拖拽状态
func (s *GooeyScene) Phase() components.DragPhase {
	return s.dragSystem.Phase()
}

// IsAtRest 没有拖拽也没有弹簧在运行
func (s *GooeyScene) IsAtRest() bool {
	return s.Phase() == components.DragIdle && s.springSystem.ActiveSprings() == 0
}

func (s *GooeyScene) drawDebugInfo(screen *ebiten.Image) {
	msg := fmt.Sprintf("pos %s\nphase %s  gesture %s\nsprings %d\nTPS %.0f  FPS %.0f",
		s.Position(), s.Phase(), s.gestureSystem.State(), s.springSystem.ActiveSprings(),
		ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
