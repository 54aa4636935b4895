package entities

import (
	"github.com/decker502/gooey/pkg/components"
	"github.com/decker502/gooey/pkg/ecs"
	"github.com/decker502/gooey/pkg/types"
	"github.com/sirupsen/logrus"
)

// NewDraggableCircleEntity 创建可拖拽的圆
//
// 参数:
//   - em: 实体管理器
//   - start: 初始中心
//   - target: 松手后回弹的目标点
//   - radius: 绘制和命中半径
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
func NewDraggableCircleEntity(em *ecs.EntityManager, start, target types.ScreenPoint, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewCoordinateStore(start))
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: radius})
	ecs.AddComponent(em, id, &components.DraggableComponent{
		Radius:       radius,
		SpringTarget: target,
		Phase:        components.DragIdle,
	})
	logrus.Debugf("[Entities] 创建可拖拽圆 %d at %s, r=%.1f", id, start, radius)
	return id
}

// NewReferenceCircleEntity 创建固定不动的参考圆
func NewReferenceCircleEntity(em *ecs.EntityManager, center types.ScreenPoint, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: center.X, Y: center.Y})
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: radius})
	logrus.Debugf("[Entities] 创建参考圆 %d at %s, r=%.1f", id, center, radius)
	return id
}
