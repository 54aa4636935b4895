package components

// CircleComponent 参与粘连图层绘制的圆
type CircleComponent struct {
	Radius float64
}
