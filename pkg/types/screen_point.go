package types

import (
	"fmt"
	"math"
)

// ScreenPoint 屏幕坐标点（逻辑像素，原点在左上角，Y 轴向下）
type ScreenPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回平移 (dx, dy) 后的点
func (p ScreenPoint) Add(dx, dy float64) ScreenPoint {
	return ScreenPoint{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo 返回两点间的欧氏距离
func (p ScreenPoint) DistanceTo(o ScreenPoint) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// ApproxEqual 判断两点在每个轴上的差值是否都不超过 epsilon
func (p ScreenPoint) ApproxEqual(o ScreenPoint, epsilon float64) bool {
	return math.Abs(p.X-o.X) <= epsilon && math.Abs(p.Y-o.Y) <= epsilon
}

func (p ScreenPoint) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
