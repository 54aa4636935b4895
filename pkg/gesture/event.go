// Package gesture 把逐帧的指针采样识别为单指拖拽手势
//
// 一次手势从按下到抬起，事件严格按 Start → Move* → End 的顺序派发。
// Move 携带的 DX/DY 是相对 Start 的累计位移，而不是相对上一次 Move 的增量。
package gesture

import "fmt"

// Phase 手势阶段
type Phase int

const (
	// PhaseStart 按下且命中目标
	PhaseStart Phase = iota
	// PhaseMove 按住移动
	PhaseMove
	// PhaseEnd 抬起
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Event 手势事件
type Event struct {
	Phase Phase
	// DX, DY 自 Start 以来的累计位移
	DX, DY float64
	// X, Y 指针当前位置
	X, Y float64
}

// Context 单次手势的临时上下文
//
// 在 Start 时写入一次（被拖拽对象当时的位置），手势期间不再修改，End 时丢弃。
type Context struct {
	X, Y float64
}

// Handler 接收手势回调
type Handler interface {
	OnStart(e Event)
	OnActive(e Event)
	OnEnd(e Event)
}

// HandlerFuncs 用函数实现 Handler，未设置的回调被忽略
type HandlerFuncs struct {
	Start  func(Event)
	Active func(Event)
	End    func(Event)
}

func (h HandlerFuncs) OnStart(e Event) {
	if h.Start != nil {
		h.Start(e)
	}
}

func (h HandlerFuncs) OnActive(e Event) {
	if h.Active != nil {
		h.Active(e)
	}
}

func (h HandlerFuncs) OnEnd(e Event) {
	if h.End != nil {
		h.End(e)
	}
}
