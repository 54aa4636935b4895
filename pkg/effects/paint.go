// Package effects 描述粘连圆图层的绘制效果
//
// 这里只有静态配置和着色器加载，不包含任何交互逻辑：
// 模糊 + 颜色矩阵组成图层的 Paint，扫描渐变负责上色。
package effects

import (
	"image/color"

	"github.com/decker502/gooey/pkg/config"
	"github.com/decker502/gooey/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint 图层效果
type Paint struct {
	// Blur 高斯模糊 sigma（逻辑像素）
	Blur float64
	// ColorMatrix 4x5 颜色矩阵，行优先，平移列为 [0,1] 归一化单位
	ColorMatrix [config.ColorMatrixSize]float64
	// Downsample 离屏图层降采样倍数
	Downsample int
}

// ColorM 把颜色矩阵转换为 ebiten 的 colorm.ColorM
func (p Paint) ColorM() colorm.ColorM {
	var cm colorm.ColorM
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			cm.SetElement(i, j, p.ColorMatrix[i*5+j])
		}
	}
	return cm
}

// LayerSigma 降采样后图层上的模糊 sigma
func (p Paint) LayerSigma() float64 {
	return p.Blur / float64(p.Downsample)
}

// SweepGradient 扫描渐变
type SweepGradient struct {
	// Center 渐变中心（逻辑像素）
	Center types.ScreenPoint
	Colors []colorful.Color
}

// Uniforms 生成 sweep_gradient.kage 的 uniform 参数
//
// scale 是逻辑坐标到图层像素的缩放（1/降采样倍数）。
func (g SweepGradient) Uniforms(scale float64) map[string]any {
	colors := make([]float32, 4*config.MaxGradientColors)
	for i, c := range g.Colors {
		if i >= config.MaxGradientColors {
			break
		}
		colors[i*4+0] = float32(c.R)
		colors[i*4+1] = float32(c.G)
		colors[i*4+2] = float32(c.B)
		colors[i*4+3] = 1
	}
	return map[string]any{
		"Center": []float32{float32(g.Center.X * scale), float32(g.Center.Y * scale)},
		"Colors": colors,
		"Count":  float32(min(len(g.Colors), config.MaxGradientColors)),
	}
}

// Layer 粘连图层的完整绘制配置
type Layer struct {
	Paint      Paint
	Gradient   SweepGradient
	Background color.Color
	// Radius 圆半径（逻辑像素）
	Radius float64
}

// NewLayer 从场景配置构造图层配置
//
// cfg 必须已经通过 Validate。
func NewLayer(cfg *config.SceneConfig) Layer {
	var matrix [config.ColorMatrixSize]float64
	copy(matrix[:], cfg.Paint.ColorMatrix)

	colors := make([]colorful.Color, len(cfg.Gradient.Colors))
	for i, s := range cfg.Gradient.Colors {
		colors[i] = config.MustParseColor(s)
	}

	return Layer{
		Paint: Paint{
			Blur:        cfg.Paint.Blur,
			ColorMatrix: matrix,
			Downsample:  cfg.Paint.Downsample,
		},
		Gradient: SweepGradient{
			Center: cfg.Gradient.Center,
			Colors: colors,
		},
		Background: config.MustParseColor(cfg.Background),
		Radius:     cfg.Circle.Radius,
	}
}
