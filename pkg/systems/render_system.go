package systems

import (
	"image/color"

	"github.com/decker502/gooey/pkg/components"
	"github.com/decker502/gooey/pkg/ecs"
	"github.com/decker502/gooey/pkg/effects"
	"github.com/decker502/gooey/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// Disc 本帧要画进粘连图层的一个圆
type Disc struct {
	Center types.ScreenPoint
	Radius float64
}

// RenderSystem 粘连图层渲染
//
// 每帧流程：
//  1. 在 1/Downsample 分辨率的离屏图层上画出所有圆的遮罩
//  2. 用扫描渐变着色器给遮罩上色
//  3. 水平 + 垂直两趟高斯模糊
//  4. 经颜色矩阵阈值化后放大合成到屏幕
type RenderSystem struct {
	entityManager *ecs.EntityManager
	layer         effects.Layer
	shaders       *effects.Shaders
	colorM        colorm.ColorM

	// 离屏图层，尺寸随屏幕变化重建
	mask    *ebiten.Image
	tinted  *ebiten.Image
	blurred *ebiten.Image
	layerW  int
	layerH  int
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, layer effects.Layer, shaders *effects.Shaders) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		layer:         layer,
		shaders:       shaders,
		colorM:        layer.Paint.ColorM(),
	}
}

// Discs 收集所有带 CircleComponent 的实体
//
// 可拖拽实体使用坐标存储中的当前位置，其余实体使用 PositionComponent。
func (s *RenderSystem) Discs() []Disc {
	entities := ecs.GetEntitiesWith1[*components.CircleComponent](s.entityManager)
	discs := make([]Disc, 0, len(entities))

	for _, id := range entities {
		circle, ok := ecs.GetComponent[*components.CircleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if store, ok := ecs.GetComponent[*components.CoordinateStoreComponent](s.entityManager, id); ok {
			discs = append(discs, Disc{Center: store.Get(), Radius: circle.Radius})
			continue
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			discs = append(discs, Disc{Center: types.ScreenPoint{X: pos.X, Y: pos.Y}, Radius: circle.Radius})
		}
	}
	return discs
}

// Draw 绘制整帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.layer.Background)

	downsample := s.layer.Paint.Downsample
	bounds := screen.Bounds()
	w := (bounds.Dx() + downsample - 1) / downsample
	h := (bounds.Dy() + downsample - 1) / downsample
	if w <= 0 || h <= 0 {
		return
	}
	s.ensureLayers(w, h)

	scale := 1 / float64(downsample)

	// 1. 遮罩
	s.mask.Clear()
	for _, d := range s.Discs() {
		vector.DrawFilledCircle(s.mask,
			float32(d.Center.X*scale), float32(d.Center.Y*scale), float32(d.Radius*scale),
			color.White, true)
	}

	// 2. 扫描渐变上色
	s.tinted.Clear()
	gradientOp := &ebiten.DrawRectShaderOptions{}
	gradientOp.Images[0] = s.mask
	gradientOp.Uniforms = s.layer.Gradient.Uniforms(scale)
	s.tinted.DrawRectShader(w, h, s.shaders.SweepGradient, gradientOp)

	// 3. 两趟模糊：tinted -> blurred -> tinted
	sigma := float32(s.layer.Paint.LayerSigma())
	if sigma > 0 {
		s.blurPass(s.blurred, s.tinted, w, h, []float32{1, 0}, sigma)
		s.blurPass(s.tinted, s.blurred, w, h, []float32{0, 1}, sigma)
	}

	// 4. 颜色矩阵 + 放大
	op := &colorm.DrawImageOptions{}
	op.GeoM.Scale(float64(downsample), float64(downsample))
	op.Filter = ebiten.FilterLinear
	colorm.DrawImage(screen, s.tinted, s.colorM, op)
}

func (s *RenderSystem) blurPass(dst, src *ebiten.Image, w, h int, direction []float32, sigma float32) {
	dst.Clear()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Direction": direction,
		"Sigma":     sigma,
	}
	dst.DrawRectShader(w, h, s.shaders.Blur, op)
}

func (s *RenderSystem) ensureLayers(w, h int) {
	if s.mask != nil && s.layerW == w && s.layerH == h {
		return
	}
	s.deallocateLayers()
	s.mask = ebiten.NewImage(w, h)
	s.tinted = ebiten.NewImage(w, h)
	s.blurred = ebiten.NewImage(w, h)
	s.layerW, s.layerH = w, h
	logrus.Debugf("[RenderSystem] 创建离屏图层 %dx%d (降采样 %d)", w, h, s.layer.Paint.Downsample)
}

func (s *RenderSystem) deallocateLayers() {
	for _, img := range []*ebiten.Image{s.mask, s.tinted, s.blurred} {
		if img != nil {
			img.Deallocate()
		}
	}
	s.mask, s.tinted, s.blurred = nil, nil, nil
}
