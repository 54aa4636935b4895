package components

import (
	"github.com/decker502/gooey/pkg/gesture"
	"github.com/decker502/gooey/pkg/types"
)

// DragPhase 拖拽状态
type DragPhase int

const (
	// DragIdle 空闲（可能正在回弹）
	DragIdle DragPhase = iota
	// DragDragging 拖拽中
	DragDragging
)

func (p DragPhase) String() string {
	if p == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DraggableComponent 标记实体可以被拖拽，松手后弹回 SpringTarget
type DraggableComponent struct {
	// Radius 命中半径（与绘制半径一致）
	Radius float64
	// SpringTarget 松手后回弹的目标点
	SpringTarget types.ScreenPoint

	// Phase 当前拖拽状态
	Phase DragPhase
	// Context 本次手势开始时捕获的位置，仅在 DragDragging 期间非 nil
	Context *gesture.Context
}
