package components

import (
	"github.com/decker502/gooey/pkg/animation"
	"github.com/decker502/gooey/pkg/types"
)

// CoordinateStoreComponent 可拖拽对象的中心坐标
//
// X、Y 是两个独立的可动画单元格，每个轴可以各自运行弹簧。
// 拖拽期间由 DragSpringSystem 写入，松手后由弹簧动画器写入，渲染系统每帧读取。
type CoordinateStoreComponent struct {
	X *animation.Value
	Y *animation.Value
}

// NewCoordinateStore 创建初始位于 p 的坐标存储
func NewCoordinateStore(p types.ScreenPoint) *CoordinateStoreComponent {
	return &CoordinateStoreComponent{
		X: animation.NewValue("cx", p.X),
		Y: animation.NewValue("cy", p.Y),
	}
}

// Get 返回当前中心
func (c *CoordinateStoreComponent) Get() types.ScreenPoint {
	return types.ScreenPoint{X: c.X.Current(), Y: c.Y.Current()}
}

// Set 同时写入两个轴
func (c *CoordinateStoreComponent) Set(p types.ScreenPoint) {
	c.X.SetCurrent(p.X)
	c.Y.SetCurrent(p.Y)
}
