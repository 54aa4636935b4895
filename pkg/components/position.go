package components

// PositionComponent 静态位置（中心参考圆）
type PositionComponent struct {
	X float64
	Y float64
}
