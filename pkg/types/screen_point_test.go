package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenPoint(t *testing.T) {
	p := ScreenPoint{X: 187, Y: 333}

	assert.Equal(t, ScreenPoint{X: 237, Y: 313}, p.Add(50, -20))
	assert.InDelta(t, 5.0, p.DistanceTo(ScreenPoint{X: 190, Y: 337}), 1e-9)
	assert.Equal(t, "(187.0, 333.0)", p.String())
}

func TestScreenPointApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ScreenPoint
		eps  float64
		want bool
	}{
		{"完全相等", ScreenPoint{X: 1, Y: 2}, ScreenPoint{X: 1, Y: 2}, 0, true},
		{"误差内", ScreenPoint{X: 1, Y: 2}, ScreenPoint{X: 1.005, Y: 1.995}, 0.01, true},
		{"单轴超出", ScreenPoint{X: 1, Y: 2}, ScreenPoint{X: 1, Y: 2.5}, 0.01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.ApproxEqual(tt.b, tt.eps))
		})
	}
}
