// Package animation 提供可动画的标量值和弹簧动画器
//
// Value 是一个可变的 float64 单元格，渲染每帧读取，手势和动画器写入。
// Animator 以固定步长推进弹簧动画，每个 Value 同一时刻最多只有一个弹簧在运行。
package animation

// Value 可动画的标量单元格
type Value struct {
	name    string
	current float64
}

// NewValue 创建初始值为 initial 的单元格，name 仅用于日志
func NewValue(name string, initial float64) *Value {
	return &Value{name: name, current: initial}
}

// Current 返回当前值
func (v *Value) Current() float64 {
	return v.current
}

// SetCurrent 直接写入新值
//
// 注意：不会取消正在运行的弹簧，需要先调用 Animator.Cancel
func (v *Value) SetCurrent(value float64) {
	v.current = value
}

// Name 返回单元格名称
func (v *Value) Name() string {
	return v.name
}
