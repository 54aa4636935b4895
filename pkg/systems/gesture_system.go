package systems

import "github.com/decker502/gooey/pkg/gesture"

// PointerSampler 每帧提供一次指针状态
type PointerSampler interface {
	Sample() gesture.PointerSample
}

// GestureSystem 把指针输入喂给手势识别器
type GestureSystem struct {
	recognizer *gesture.Recognizer
	sampler    PointerSampler
}

// NewGestureSystem 创建手势系统
func NewGestureSystem(recognizer *gesture.Recognizer, sampler PointerSampler) *GestureSystem {
	return &GestureSystem{
		recognizer: recognizer,
		sampler:    sampler,
	}
}

// Update 读取一次指针状态，识别器据此回调 Handler
func (s *GestureSystem) Update(deltaTime float64) {
	s.recognizer.Feed(s.sampler.Sample())
}

// State 识别器状态
func (s *GestureSystem) State() gesture.State {
	return s.recognizer.State()
}

// IgnoreHeldPointer 忽略当前仍按住的指针，直到它抬起
func (s *GestureSystem) IgnoreHeldPointer() {
	s.recognizer.IgnoreUntilRelease()
}
