// Package utils 提供通用工具函数
package utils

import (
	"slices"

	"github.com/decker502/gooey/pkg/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针输入来源
// 默认实现读取 ebiten 的触摸和鼠标状态，测试中可以替换
type PointerSource interface {
	TouchIDs() []ebiten.TouchID
	JustPressedTouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	MousePressed() bool
	CursorPosition() (int, int)
}

type ebitenPointerSource struct{}

func (ebitenPointerSource) TouchIDs() []ebiten.TouchID {
	return ebiten.AppendTouchIDs(nil)
}

func (ebitenPointerSource) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (ebitenPointerSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenPointerSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointerSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// PointerTracker 每帧把触摸/鼠标状态整理成一个 gesture.PointerSample
//
// 优先检测触摸：按下后锁定该触摸ID，直到它抬起；其它手指被忽略。
// 没有触摸时使用鼠标左键，ID 为 gesture.MousePointerID。
type PointerTracker struct {
	source PointerSource

	tracking     bool
	touchID      ebiten.TouchID
	lastX, lastY int
}

// NewPointerTracker 创建读取 ebiten 输入的指针跟踪器
func NewPointerTracker() *PointerTracker {
	return NewPointerTrackerWithSource(ebitenPointerSource{})
}

// NewPointerTrackerWithSource 使用指定输入来源创建跟踪器
func NewPointerTrackerWithSource(source PointerSource) *PointerTracker {
	return &PointerTracker{source: source, touchID: -1}
}

// Sample 读取本帧的指针状态（每帧调用一次）
func (t *PointerTracker) Sample() gesture.PointerSample {
	if t.tracking {
		if slices.Contains(t.source.TouchIDs(), t.touchID) {
			t.lastX, t.lastY = t.source.TouchPosition(t.touchID)
			return t.touchSample(true)
		}
		// 触摸已释放，使用最后一次位置
		sample := t.touchSample(false)
		t.tracking = false
		t.touchID = -1
		return sample
	}

	if ids := t.source.JustPressedTouchIDs(); len(ids) > 0 {
		t.tracking = true
		t.touchID = ids[0]
		t.lastX, t.lastY = t.source.TouchPosition(t.touchID)
		return t.touchSample(true)
	}

	x, y := t.source.CursorPosition()
	return gesture.PointerSample{
		Pressed: t.source.MousePressed(),
		X:       float64(x),
		Y:       float64(y),
		ID:      gesture.MousePointerID,
	}
}

// IsTouchTracking 是否正在跟踪触摸
func (t *PointerTracker) IsTouchTracking() bool {
	return t.tracking
}

func (t *PointerTracker) touchSample(pressed bool) gesture.PointerSample {
	return gesture.PointerSample{
		Pressed: pressed,
		X:       float64(t.lastX),
		Y:       float64(t.lastY),
		ID:      int(t.touchID),
	}
}
