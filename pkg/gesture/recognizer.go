package gesture

import (
	"github.com/sirupsen/logrus"
)

// MousePointerID 鼠标输入使用的指针ID（触摸ID从0开始）
const MousePointerID = -1

// PointerSample 某一帧的指针状态
type PointerSample struct {
	// Pressed 鼠标左键或触摸是否按下
	Pressed bool
	// X, Y 指针位置（与被拖拽对象同一坐标系）
	X, Y float64
	// ID 触摸ID，鼠标为 MousePointerID
	ID int
}

// State 识别器状态
type State int

const (
	// StateIdle 没有按下
	StateIdle State = iota
	// StateTracking 按下时命中了目标，正在跟踪拖拽
	StateTracking
	// StateRejected 按下时未命中目标，直到抬起前都忽略该指针
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Recognizer 单指拖拽识别器
//
// 每帧调用一次 Feed。只有按下瞬间命中 HitTester 的指针才会产生手势；
// 手势期间只跟踪开始时的那个指针。
type Recognizer struct {
	hitTester HitTester
	handler   Handler

	state      State
	pointerID  int
	startX     float64
	startY     float64
	lastDX     float64
	lastDY     float64
	lastX      float64
	lastY      float64
	wasPressed bool
}

// NewRecognizer 创建识别器
func NewRecognizer(hitTester HitTester, handler Handler) *Recognizer {
	return &Recognizer{
		hitTester: hitTester,
		handler:   handler,
		state:     StateIdle,
		pointerID: MousePointerID,
	}
}

// State 返回当前状态
func (r *Recognizer) State() State {
	return r.state
}

// Feed 输入一帧指针采样，必要时派发事件
func (r *Recognizer) Feed(s PointerSample) {
	justPressed := s.Pressed && !r.wasPressed
	r.wasPressed = s.Pressed

	switch r.state {
	case StateIdle:
		if !justPressed {
			return
		}
		if r.hitTester == nil || !r.hitTester.Contains(s.X, s.Y) {
			r.state = StateRejected
			logrus.Debugf("[Gesture] 按下点 (%.1f, %.1f) 未命中目标，忽略本次按压", s.X, s.Y)
			return
		}
		r.state = StateTracking
		r.pointerID = s.ID
		r.startX, r.startY = s.X, s.Y
		r.lastX, r.lastY = s.X, s.Y
		r.lastDX, r.lastDY = 0, 0
		r.handler.OnStart(Event{Phase: PhaseStart, X: s.X, Y: s.Y})

	case StateTracking:
		// 跟踪的指针抬起（或者换成了另一根手指）都视为手势结束
		if !s.Pressed || s.ID != r.pointerID {
			r.finish()
			return
		}
		dx := s.X - r.startX
		dy := s.Y - r.startY
		r.lastX, r.lastY = s.X, s.Y
		if dx == r.lastDX && dy == r.lastDY {
			return
		}
		r.lastDX, r.lastDY = dx, dy
		r.handler.OnActive(Event{Phase: PhaseMove, DX: dx, DY: dy, X: s.X, Y: s.Y})

	case StateRejected:
		if !s.Pressed {
			r.state = StateIdle
		}
	}
}

// Reset 放弃当前手势；跟踪中的手势会收到 End
func (r *Recognizer) Reset() {
	if r.state == StateTracking {
		r.finish()
	}
	r.state = StateIdle
}

// IgnoreUntilRelease 放弃当前手势，并忽略仍按住的指针直到它抬起
//
// 用于新建识别器时指针可能已经按下的情况（例如重置场景），
// 这时的按压不是一次新的按下，不能触发 Start。
func (r *Recognizer) IgnoreUntilRelease() {
	if r.state == StateTracking {
		r.finish()
	}
	r.state = StateRejected
}

func (r *Recognizer) finish() {
	r.state = StateIdle
	r.pointerID = MousePointerID
	r.handler.OnEnd(Event{Phase: PhaseEnd, DX: r.lastDX, DY: r.lastDY, X: r.lastX, Y: r.lastY})
}
