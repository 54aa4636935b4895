package systems

import (
	"github.com/decker502/gooey/pkg/animation"
	"github.com/decker502/gooey/pkg/components"
	"github.com/decker502/gooey/pkg/ecs"
	"github.com/decker502/gooey/pkg/gesture"
	"github.com/decker502/gooey/pkg/types"
	"github.com/sirupsen/logrus"
)

// DragSpringSystem 拖拽 + 回弹控制器
//
// 作为 gesture.Handler 接收手势事件：
//   - Start：取消两个轴上的弹簧，把当前位置记录到手势上下文
//   - Move：位置 = 上下文 + 累计位移
//   - End：丢弃上下文，两个轴分别弹回 SpringTarget
//
// 拖拽期间只有本系统写坐标；松手后只有弹簧动画器写坐标。
type DragSpringSystem struct {
	entityManager *ecs.EntityManager
	animator      *animation.Animator
	spring        animation.SpringConfig
	entity        ecs.EntityID
}

// NewDragSpringSystem 创建控制器
//
// entity 必须拥有 CoordinateStoreComponent 和 DraggableComponent。
func NewDragSpringSystem(em *ecs.EntityManager, animator *animation.Animator, entity ecs.EntityID, spring animation.SpringConfig) *DragSpringSystem {
	return &DragSpringSystem{
		entityManager: em,
		animator:      animator,
		spring:        spring,
		entity:        entity,
	}
}

// Entity 返回被控制的实体
func (s *DragSpringSystem) Entity() ecs.EntityID {
	return s.entity
}

// Phase 返回当前拖拽状态
func (s *DragSpringSystem) Phase() components.DragPhase {
	_, drag, ok := s.lookup()
	if !ok {
		return components.DragIdle
	}
	return drag.Phase
}

// HitRegion 返回以对象当前位置为圆心的命中区域
//
// 圆心在每次判定时实时读取存储，回弹途中也能重新抓住。
func (s *DragSpringSystem) HitRegion() gesture.CircleRegion {
	radius := 0.0
	if _, drag, ok := s.lookup(); ok {
		radius = drag.Radius
	}
	return gesture.CircleRegion{
		Center: func() (float64, float64) {
			store, _, ok := s.lookup()
			if !ok {
				return 0, 0
			}
			p := store.Get()
			return p.X, p.Y
		},
		Radius: radius,
	}
}

// OnStart 手势开始
func (s *DragSpringSystem) OnStart(e gesture.Event) {
	store, drag, ok := s.lookup()
	if !ok {
		return
	}
	if drag.Phase == components.DragDragging {
		logrus.Debugf("[DragSpringSystem] 忽略重复的 Start (entity %d)", s.entity)
		return
	}

	// 先停掉正在进行的回弹，再读取位置
	s.animator.Cancel(store.X)
	s.animator.Cancel(store.Y)

	p := store.Get()
	drag.Context = &gesture.Context{X: p.X, Y: p.Y}
	drag.Phase = components.DragDragging
	logrus.Debugf("[DragSpringSystem] 开始拖拽 entity %d at %s", s.entity, p)
}

// OnActive 手势移动
func (s *DragSpringSystem) OnActive(e gesture.Event) {
	store, drag, ok := s.lookup()
	if !ok {
		return
	}
	if drag.Phase != components.DragDragging || drag.Context == nil {
		logrus.Debugf("[DragSpringSystem] 忽略没有 Start 的 Move (entity %d)", s.entity)
		return
	}
	store.Set(types.ScreenPoint{X: drag.Context.X + e.DX, Y: drag.Context.Y + e.DY})
}

// OnEnd 手势结束
func (s *DragSpringSystem) OnEnd(e gesture.Event) {
	store, drag, ok := s.lookup()
	if !ok {
		return
	}
	if drag.Phase != components.DragDragging {
		logrus.Debugf("[DragSpringSystem] 忽略没有 Start 的 End (entity %d)", s.entity)
		return
	}

	drag.Context = nil
	drag.Phase = components.DragIdle

	target := drag.SpringTarget
	s.animator.RunSpring(store.X, target.X, s.spring, nil)
	s.animator.RunSpring(store.Y, target.Y, s.spring, nil)
	logrus.Debugf("[DragSpringSystem] 松手 entity %d at %s，回弹到 %s", s.entity, store.Get(), target)
}

func (s *DragSpringSystem) lookup() (*components.CoordinateStoreComponent, *components.DraggableComponent, bool) {
	store, ok := ecs.GetComponent[*components.CoordinateStoreComponent](s.entityManager, s.entity)
	if !ok {
		return nil, nil, false
	}
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, s.entity)
	if !ok {
		return nil, nil, false
	}
	return store, drag, true
}
