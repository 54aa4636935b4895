package animation

import (
	"fmt"
	"math"
)

// SpringConfig 弹簧参数
//
// 字段沿用 react-native-skia runSpring 的配置词汇，
// 内部换算为 harmonica 需要的角频率和阻尼比。
type SpringConfig struct {
	Mass      float64 `yaml:"mass"`      // 质量
	Stiffness float64 `yaml:"stiffness"` // 刚度 k
	Damping   float64 `yaml:"damping"`   // 阻尼系数 c
	Velocity  float64 `yaml:"velocity"`  // 初始速度（单位/秒）

	// RestDisplacementThreshold 距目标的位移小于该值视为静止
	RestDisplacementThreshold float64 `yaml:"restDisplacementThreshold"`
	// RestSpeedThreshold 速度小于该值视为静止（单位/秒）
	RestSpeedThreshold float64 `yaml:"restSpeedThreshold"`
}

// DefaultSpringConfig 返回默认弹簧参数
//
// 阻尼取临界值 (ζ = 1)，回弹轨迹单调、无过冲。
// react-native-skia 的默认值是 damping=10 (ζ = 0.5)，可通过配置文件恢复。
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		Mass:                      1,
		Stiffness:                 100,
		Damping:                   20,
		Velocity:                  0,
		RestDisplacementThreshold: 0.01,
		RestSpeedThreshold:        2,
	}
}

// AngularFrequency 无阻尼角频率 ω = sqrt(k/m)
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio 阻尼比 ζ = c / (2·sqrt(k·m))
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// IsCriticallyDampedOrOver 阻尼比 >= 1 时轨迹不会越过目标
func (c SpringConfig) IsCriticallyDampedOrOver() bool {
	return c.DampingRatio() >= 1
}

// Validate 检查参数是否可用
//
// 阻尼必须为正：ζ = 0 时弹簧永远振荡，不会进入静止阈值。
func (c SpringConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"mass", c.Mass},
		{"stiffness", c.Stiffness},
		{"damping", c.Damping},
		{"velocity", c.Velocity},
		{"restDisplacementThreshold", c.RestDisplacementThreshold},
		{"restSpeedThreshold", c.RestSpeedThreshold},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("spring %s must be finite, got %v", f.name, f.value)
		}
	}

	if c.Mass <= 0 {
		return fmt.Errorf("spring mass must be > 0, got %.3f", c.Mass)
	}
	if c.Stiffness <= 0 {
		return fmt.Errorf("spring stiffness must be > 0, got %.3f", c.Stiffness)
	}
	if c.Damping <= 0 {
		return fmt.Errorf("spring damping must be > 0, got %.3f", c.Damping)
	}
	if c.RestDisplacementThreshold <= 0 {
		return fmt.Errorf("restDisplacementThreshold must be > 0, got %.3f", c.RestDisplacementThreshold)
	}
	if c.RestSpeedThreshold <= 0 {
		return fmt.Errorf("restSpeedThreshold must be > 0, got %.3f", c.RestSpeedThreshold)
	}
	return nil
}
