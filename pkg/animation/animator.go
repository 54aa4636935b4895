package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/sirupsen/logrus"
)

// springRun 单个 Value 上正在运行的弹簧
type springRun struct {
	value    *Value
	target   float64
	velocity float64
	config   SpringConfig
	onDone   func()

	// harmonica.Spring 的系数依赖步长，步长变化时重新计算
	spring harmonica.Spring
	stepDt float64
}

// Animator 弹簧动画器
//
// 由游戏循环每帧调用 Update 推进；所有调用都在同一个线程上，不需要加锁。
type Animator struct {
	runs []*springRun
}

// NewAnimator 创建动画器
func NewAnimator() *Animator {
	return &Animator{}
}

// RunSpring 让 value 以弹簧方式从当前值运动到 target
//
// 如果 value 上已有弹簧在运行，旧的弹簧被取消（不会再写入，也不会触发它的 onDone），
// 新弹簧从当前（可能是运动中的）值重新开始。
// onDone 在到达静止并吸附到 target 后调用，可为 nil。
func (a *Animator) RunSpring(value *Value, target float64, config SpringConfig, onDone func()) {
	run := &springRun{
		value:    value,
		target:   target,
		velocity: config.Velocity,
		config:   config,
		onDone:   onDone,
	}

	for i, existing := range a.runs {
		if existing.value == value {
			logrus.Debugf("[Animator] %s: 重新触发弹簧，从 %.2f 重新开始 -> %.2f", value.Name(), value.Current(), target)
			a.runs[i] = run
			return
		}
	}

	logrus.Debugf("[Animator] %s: 启动弹簧 %.2f -> %.2f (ζ=%.2f)", value.Name(), value.Current(), target, config.DampingRatio())
	a.runs = append(a.runs, run)
}

// Cancel 停止 value 上的弹簧，value 保持在当前值
// 返回是否确实取消了一个正在运行的弹簧
func (a *Animator) Cancel(value *Value) bool {
	for i, run := range a.runs {
		if run.value == value {
			a.runs = append(a.runs[:i], a.runs[i+1:]...)
			logrus.Debugf("[Animator] %s: 弹簧被取消，停在 %.2f", value.Name(), value.Current())
			return true
		}
	}
	return false
}

// IsAnimating 返回 value 上是否有弹簧在运行
func (a *Animator) IsAnimating(value *Value) bool {
	for _, run := range a.runs {
		if run.value == value {
			return true
		}
	}
	return false
}

// ActiveCount 返回正在运行的弹簧数量
func (a *Animator) ActiveCount() int {
	return len(a.runs)
}

// Update 推进所有弹簧 deltaTime 秒
func (a *Animator) Update(deltaTime float64) {
	if deltaTime <= 0 || len(a.runs) == 0 {
		return
	}

	var finished []func()
	remaining := a.runs[:0]
	for _, run := range a.runs {
		if run.stepDt != deltaTime {
			run.spring = harmonica.NewSpring(deltaTime, run.config.AngularFrequency(), run.config.DampingRatio())
			run.stepDt = deltaTime
		}

		pos, vel := run.spring.Update(run.value.current, run.velocity, run.target)
		run.velocity = vel

		if math.Abs(pos-run.target) <= run.config.RestDisplacementThreshold &&
			math.Abs(vel) <= run.config.RestSpeedThreshold {
			run.value.current = run.target
			logrus.Debugf("[Animator] %s: 弹簧静止于 %.2f", run.value.Name(), run.target)
			if run.onDone != nil {
				finished = append(finished, run.onDone)
			}
			continue
		}

		run.value.current = pos
		remaining = append(remaining, run)
	}
	// 清掉尾部的悬空指针
	for i := len(remaining); i < len(a.runs); i++ {
		a.runs[i] = nil
	}
	a.runs = remaining

	// 回调放在最后执行，回调里可以安全地再次调用 RunSpring
	for _, done := range finished {
		done()
	}
}
