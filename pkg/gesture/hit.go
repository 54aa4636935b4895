package gesture

// HitTester 判断按下点是否落在可拖拽对象上
type HitTester interface {
	Contains(x, y float64) bool
}

// CircleRegion 圆形命中区域
//
// 圆心通过 Center 在每次判定时实时读取，所以区域跟随对象当前位置（包括弹簧回弹途中的位置）。
type CircleRegion struct {
	Center func() (float64, float64)
	Radius float64
}

// Contains 点在圆内或圆周上时返回 true
func (c CircleRegion) Contains(x, y float64) bool {
	if c.Center == nil || c.Radius <= 0 {
		return false
	}
	cx, cy := c.Center()
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitTestFunc 用函数实现 HitTester
type HitTestFunc func(x, y float64) bool

func (f HitTestFunc) Contains(x, y float64) bool {
	return f(x, y)
}
