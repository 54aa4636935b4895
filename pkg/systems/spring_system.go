package systems

import "github.com/decker502/gooey/pkg/animation"

// SpringSystem 每帧推进弹簧动画
type SpringSystem struct {
	animator *animation.Animator
}

// NewSpringSystem 创建弹簧系统
func NewSpringSystem(animator *animation.Animator) *SpringSystem {
	return &SpringSystem{animator: animator}
}

// Update 推进所有弹簧
func (s *SpringSystem) Update(deltaTime float64) {
	s.animator.Update(deltaTime)
}

// ActiveSprings 正在运行的弹簧数量
func (s *SpringSystem) ActiveSprings() int {
	return s.animator.ActiveCount()
}
