package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 60.0

// stepUntilIdle 推进动画器直到没有运行中的弹簧，返回消耗的帧数
func stepUntilIdle(t *testing.T, a *Animator, maxFrames int) int {
	t.Helper()
	for frame := 1; frame <= maxFrames; frame++ {
		a.Update(testDt)
		if a.ActiveCount() == 0 {
			return frame
		}
	}
	t.Fatalf("springs still running after %d frames", maxFrames)
	return maxFrames
}

func TestSpringConfigConversion(t *testing.T) {
	tests := []struct {
		name      string
		config    SpringConfig
		wantOmega float64
		wantZeta  float64
	}{
		{"默认临界阻尼", DefaultSpringConfig(), 10, 1},
		{"skia 默认欠阻尼", SpringConfig{Mass: 1, Stiffness: 100, Damping: 10}, 10, 0.5},
		{"质量加倍", SpringConfig{Mass: 4, Stiffness: 100, Damping: 40}, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantOmega, tt.config.AngularFrequency(), 1e-9)
			assert.InDelta(t, tt.wantZeta, tt.config.DampingRatio(), 1e-9)
		})
	}
}

func TestSpringConfigValidate(t *testing.T) {
	require.NoError(t, DefaultSpringConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *SpringConfig)
	}{
		{"质量为0", func(c *SpringConfig) { c.Mass = 0 }},
		{"刚度为负", func(c *SpringConfig) { c.Stiffness = -1 }},
		{"阻尼为负", func(c *SpringConfig) { c.Damping = -0.1 }},
		{"阻尼为0永远振荡", func(c *SpringConfig) { c.Damping = 0 }},
		{"质量为NaN", func(c *SpringConfig) { c.Mass = math.NaN() }},
		{"刚度为无穷大", func(c *SpringConfig) { c.Stiffness = math.Inf(1) }},
		{"初始速度为NaN", func(c *SpringConfig) { c.Velocity = math.NaN() }},
		{"位移阈值为NaN", func(c *SpringConfig) { c.RestDisplacementThreshold = math.NaN() }},
		{"速度阈值为负无穷", func(c *SpringConfig) { c.RestSpeedThreshold = math.Inf(-1) }},
		{"位移阈值为0", func(c *SpringConfig) { c.RestDisplacementThreshold = 0 }},
		{"速度阈值为0", func(c *SpringConfig) { c.RestSpeedThreshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultSpringConfig()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestRunSpringSettlesExactlyOnTarget(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 237)

	done := 0
	a.RunSpring(v, 187, DefaultSpringConfig(), func() { done++ })
	require.True(t, a.IsAnimating(v))

	stepUntilIdle(t, a, 600)

	assert.Equal(t, 187.0, v.Current(), "value should snap to the target exactly")
	assert.Equal(t, 1, done, "onDone should fire exactly once")
	assert.False(t, a.IsAnimating(v))
}

func TestCriticallyDampedSpringIsMonotonic(t *testing.T) {
	a := NewAnimator()
	v := NewValue("y", 313)
	a.RunSpring(v, 333, DefaultSpringConfig(), nil)

	prev := v.Current()
	for a.ActiveCount() > 0 {
		a.Update(testDt)
		cur := v.Current()
		assert.GreaterOrEqual(t, cur, prev, "trajectory must not move away from the target")
		assert.LessOrEqual(t, cur, 333.0, "critically damped spring must not overshoot")
		prev = cur
	}
	assert.Equal(t, 333.0, v.Current())
}

func TestUnderdampedSpringOvershootsButSettles(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 0)
	config := DefaultSpringConfig()
	config.Damping = 10

	a.RunSpring(v, 100, config, nil)

	maxSeen := 0.0
	for frame := 0; frame < 600 && a.ActiveCount() > 0; frame++ {
		a.Update(testDt)
		maxSeen = math.Max(maxSeen, v.Current())
	}
	assert.Greater(t, maxSeen, 100.0, "ζ=0.5 should overshoot")
	assert.Equal(t, 100.0, v.Current())
}

func TestRunSpringRetriggerRestartsFromInFlightValue(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 0)

	firstDone := false
	a.RunSpring(v, 100, DefaultSpringConfig(), func() { firstDone = true })
	for i := 0; i < 10; i++ {
		a.Update(testDt)
	}
	inFlight := v.Current()
	require.Greater(t, inFlight, 0.0)
	require.Less(t, inFlight, 100.0)

	secondDone := false
	a.RunSpring(v, 100, DefaultSpringConfig(), func() { secondDone = true })
	assert.Equal(t, 1, a.ActiveCount(), "retrigger must replace, not stack")
	assert.Equal(t, inFlight, v.Current(), "retrigger must not jump the value")

	stepUntilIdle(t, a, 600)
	assert.False(t, firstDone, "superseded spring must not complete")
	assert.True(t, secondDone)
	assert.Equal(t, 100.0, v.Current())
}

func TestCancelHaltsWrites(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 0)
	a.RunSpring(v, 100, DefaultSpringConfig(), nil)
	a.Update(testDt)
	a.Update(testDt)

	assert.True(t, a.Cancel(v))
	frozen := v.Current()
	for i := 0; i < 30; i++ {
		a.Update(testDt)
	}
	assert.Equal(t, frozen, v.Current())
	assert.False(t, a.Cancel(v), "second cancel is a no-op")
}

func TestIndependentAxes(t *testing.T) {
	a := NewAnimator()
	x := NewValue("x", 237)
	y := NewValue("y", 313)
	a.RunSpring(x, 187, DefaultSpringConfig(), nil)
	a.RunSpring(y, 333, DefaultSpringConfig(), nil)
	require.Equal(t, 2, a.ActiveCount())

	a.Update(testDt)
	a.Cancel(x)
	xFrozen := x.Current()

	stepUntilIdle(t, a, 600)
	assert.Equal(t, xFrozen, x.Current(), "cancelled axis stays put")
	assert.Equal(t, 333.0, y.Current(), "other axis still settles")
}

func TestOnDoneMayStartNewSpring(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 0)

	a.RunSpring(v, 10, DefaultSpringConfig(), func() {
		a.RunSpring(v, 0, DefaultSpringConfig(), nil)
	})

	stepUntilIdle(t, a, 1200)
	assert.Equal(t, 0.0, v.Current())
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	a := NewAnimator()
	v := NewValue("x", 5)
	a.RunSpring(v, 0, DefaultSpringConfig(), nil)

	a.Update(0)
	a.Update(-1)
	assert.Equal(t, 5.0, v.Current())
	assert.True(t, a.IsAnimating(v))
}

// TestLightlyDampedSpringStillSettles 阻尼很小但为正时仍然在有限帧内静止
func TestLightlyDampedSpringStillSettles(t *testing.T) {
	cfg := DefaultSpringConfig()
	cfg.Damping = 1
	require.NoError(t, cfg.Validate())

	a := NewAnimator()
	v := NewValue("x", 237)
	a.RunSpring(v, 187, cfg, nil)

	stepUntilIdle(t, a, 3000)
	assert.Equal(t, 187.0, v.Current())
}
